package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/bookshop/internal/api/dto"
	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	er "github.com/RoyceAzure/lab/bookshop/internal/pkg/apperror"
	"github.com/RoyceAzure/lab/bookshop/internal/service"
	"github.com/RoyceAzure/lab/bookshop/internal/util"
	"github.com/RoyceAzure/lab/bookshop/internal/validator"
	"github.com/go-chi/chi/v5"
)

const MsgOrderCreated = "Order created"

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

func orderNumberParam(r *http.Request) (int, error) {
	ono, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || ono <= 0 {
		return 0, er.Validation(validator.MsgOrderNumberRequired)
	}
	return ono, nil
}

// @Summary list orders of session user
// @Tags orders
// @Produce json
// @Success 200 {array} dto.OrderDTO
// @Failure 404 {object} response.ErrorBody "Items not found."
// @Router /orders [get]
func (o *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := util.GetSessionUserIDFromContext(r.Context())

	orders, err := o.orderService.ListOrders(r.Context(), userID)
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}

	result := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		result = append(result, convertOrderModelToDTO(order))
	}
	response.SuccessJSON(w, http.StatusOK, result)
}

// @Summary get order with lines
// @Tags orders
// @Produce json
// @Param id path int true "order number"
// @Success 200 {object} dto.OrderDetailDTO
// @Failure 404 {object} response.ErrorBody "Item not found."
// @Router /orders/{id} [get]
func (o *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ono, err := orderNumberParam(r)
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}
	userID, _ := util.GetSessionUserIDFromContext(r.Context())

	detail, err := o.orderService.GetOrder(r.Context(), ono, userID)
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, convertOrderDetailToDTO(detail))
}

// @Summary create order from cart
// @Tags orders
// @Produce json
// @Success 201 {object} dto.OrderCreatedResponse
// @Failure 404 {object} response.ErrorBody "Cart is empty."
// @Router /orders [post]
func (o *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := util.GetSessionUserIDFromContext(r.Context())

	ono, err := o.orderService.CreateOrder(r.Context(), userID)
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}
	response.SuccessJSON(w, http.StatusCreated, dto.OrderCreatedResponse{
		Message:     MsgOrderCreated,
		OrderNumber: ono,
	})
}

// @Summary delete order and its lines
// @Tags orders
// @Param id path int true "order number"
// @Success 204
// @Failure 404 {object} response.ErrorBody "Item not found."
// @Router /orders/{id} [delete]
func (o *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ono, err := orderNumberParam(r)
	if err != nil {
		response.ErrorJSON(w, r, err)
		return
	}
	userID, _ := util.GetSessionUserIDFromContext(r.Context())

	if err := o.orderService.DeleteOrder(r.Context(), ono, userID); err != nil {
		response.ErrorJSON(w, r, err)
		return
	}
	response.NoContent(w)
}
