package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/bookshop/internal/api/dto"
	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/RoyceAzure/lab/bookshop/internal/service"
	"github.com/RoyceAzure/lab/bookshop/internal/util"
)

const MsgCartSaved = "Cart saved."

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

// @Summary get cart of session user
// @Tags cart
// @Produce json
// @Success 200 {array} dto.CartItemDTO
// @Failure 401 {object} response.ErrorBody "User not authorized."
// @Router /cart [get]
func (c *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := util.GetSessionUserIDFromContext(r.Context())

	items, err := c.cartService.GetCart(r.Context(), userID)
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}

	result := make([]dto.CartItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, dto.CartItemDTO{
			ISBN:     item.ISBN,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	response.SuccessJSON(w, http.StatusOK, result)
}

// @Summary add book to cart, quantity accumulates
// @Tags cart
// @Accept json
// @Produce json
// @Param line body dto.AddToCartDTO true "isbn and quantity"
// @Success 201 {object} dto.CartSavedResponse
// @Failure 400 {object} response.ErrorBody "Incomplete information."
// @Failure 404 {object} response.ErrorBody "Book not found."
// @Router /cart [post]
func (c *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var body dto.AddToCartDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.ErrorMessageJSON(w, http.StatusBadRequest, er.ErrStrMap[er.ValidationCode])
		return
	}

	userID, _ := util.GetSessionUserIDFromContext(r.Context())
	line, err := c.cartService.AddToCart(r.Context(), userID, body.ISBN, body.Quantity)
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}

	response.SuccessJSON(w, http.StatusCreated, dto.CartSavedResponse{
		Message: MsgCartSaved,
		Line: dto.CartLineDTO{
			ISBN:     line.ISBN,
			Quantity: line.Quantity,
		},
	})
}

// @Summary clear cart
// @Tags cart
// @Success 204
// @Router /cart [delete]
func (c *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := util.GetSessionUserIDFromContext(r.Context())
	if err := c.cartService.ClearCart(r.Context(), userID); err != nil {
		response.ErrorJSON(w, r, err)
		return
	}
	response.NoContent(w)
}
