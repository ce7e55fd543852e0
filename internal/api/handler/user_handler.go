package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/bookshop/internal/api/dto"
	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/session"
	"github.com/RoyceAzure/lab/bookshop/internal/model"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/RoyceAzure/lab/bookshop/internal/service"
	"github.com/RoyceAzure/lab/bookshop/internal/util"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	MsgRegistered         = "Registration successful."
	MsgLoggedOut          = "Logged out successfully."
	MsgLoggedOutWithError = "Logged out."
)

type UserHandler struct {
	userService service.IUserService
	authService service.IAuthService
	sessions    session.ISessionManager
}

func NewUserHandler(userService service.IUserService, authService service.IAuthService, sessions session.ISessionManager) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	if authService == nil {
		panic("authService cannot be nil")
	}
	if sessions == nil {
		panic("sessions cannot be nil")
	}
	return &UserHandler{
		userService: userService,
		authService: authService,
		sessions:    sessions,
	}
}

// @Summary register member
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserDTO true "member info"
// @Success 201 {object} dto.RegisterUserResponse
// @Failure 400 {object} response.ErrorBody "violations joined by newline"
// @Failure 409 {object} response.ErrorBody "Email address has to be unique."
// @Router /users/register [post]
func (u *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body dto.RegisterUserDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.ErrorMessageJSON(w, http.StatusBadRequest, er.ErrStrMap[er.ValidationCode])
		return
	}

	userID, err := u.userService.RegisterUser(r.Context(), model.RegisterUserInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Address:   body.Address,
		City:      body.City,
		Zip:       int(body.Zip),
		Phone:     body.Phone,
		Email:     body.Email,
		Password:  body.Password,
	})
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}

	response.SuccessJSON(w, http.StatusCreated, dto.RegisterUserResponse{
		Message: MsgRegistered,
		UserID:  userID,
	})
}

// @Summary login with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "email and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} response.ErrorBody "Email or password incorrect."
// @Router /users/login [post]
func (u *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.ErrorMessageJSON(w, http.StatusBadRequest, er.ErrStrMap[er.ValidationCode])
		return
	}

	result, err := u.authService.Authenticate(r.Context(), body.Email, body.Password)
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}

	if err := u.sessions.SetUserID(w, r, result.UserID); err != nil {
		response.ErrorJSON(w, r, er.Wrap(er.StorageCode, "failed to save session", err))
		return
	}

	response.SuccessJSON(w, http.StatusOK, dto.LoginResponse{
		UserID:    result.UserID,
		FirstName: result.FirstName,
	})
}

// @Summary logout
// @Tags users
// @Produce json
// @Success 200 {object} response.MessageBody
// @Router /users/logout [get]
func (u *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// 清除失敗對使用者來說仍然是登出
	if err := u.sessions.Clear(w, r); err != nil {
		log.Warn().Err(err).Str("request_id", util.GetRequestIDFromContext(r.Context())).Msg("session destroy failed")
		response.SuccessJSON(w, http.StatusOK, response.MessageBody{Message: MsgLoggedOutWithError})
		return
	}
	response.SuccessJSON(w, http.StatusOK, response.MessageBody{Message: MsgLoggedOut})
}

// @Summary get own member record
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} dto.MemberDTO
// @Failure 401 {object} response.ErrorBody "User not authorized."
// @Router /users/{id} [get]
func (u *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	callerID, _ := util.GetSessionUserIDFromContext(r.Context())
	// 非數字當成 0, 交給 service 判斷為非本人
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	member, err := u.userService.GetUserByID(r.Context(), userID, callerID)
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, convertMemberModelToDTO(member))
}
