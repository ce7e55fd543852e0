package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/bookshop/internal/api/dto"
	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	"github.com/RoyceAzure/lab/bookshop/internal/constants"
)

type VersionHandler struct {
	version string
}

func NewVersionHandler(version string) *VersionHandler {
	return &VersionHandler{version: version}
}

// @Summary api versions
// @Tags version
// @Produce json
// @Success 200 {object} dto.VersionResponse
// @Router / [get]
func (v *VersionHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.SuccessJSON(w, http.StatusOK, dto.VersionResponse{
		Name:    constants.AppName,
		Version: v.version,
		Message: "Current API versions: /api/v1",
	})
}

// @Router /api/v1 [get]
func (v *VersionHandler) V1(w http.ResponseWriter, r *http.Request) {
	response.SuccessJSON(w, http.StatusOK, dto.VersionResponse{
		Name:    constants.AppName,
		Version: v.version,
		Message: "Welcome to version 1 of this RESTful API!",
	})
}
