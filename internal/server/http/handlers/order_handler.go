package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/venkateswarareddychalla/eatoes/internal/domain/errors"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
	"github.com/venkateswarareddychalla/eatoes/internal/server/http/dto"
	"github.com/venkateswarareddychalla/eatoes/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		respondError(c, err)
		return
	}
	limit, err := queryInt(c, "limit", 10)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.facade.Orders(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	orders := make([]dto.OrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{
		Orders: orders,
		Pagination: dto.PaginationResponse{
			Page:       result.Page,
			Limit:      result.PageSize,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	lines := make([]usecase.OrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, usecase.OrderLineInput{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), usecase.CreateOrderInput{
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		Lines:        lines,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	order, err := h.facade.SetOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", domainErrors.ErrValidation, key, raw)
	}
	return value, nil
}

func toOrderResponse(detail model.OrderDetail) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, dto.OrderItemResponse{
			ID:           item.ID,
			OrderID:      item.OrderID,
			MenuItemID:   item.MenuItemID,
			Quantity:     item.Quantity,
			Price:        item.Price.String(),
			MenuItemName: item.MenuItemName,
			Category:     string(item.Category),
			ImageURL:     item.ImageURL,
		})
	}
	return dto.OrderResponse{
		ID:           detail.ID,
		OrderNumber:  detail.Number,
		TotalAmount:  detail.TotalAmount.String(),
		Status:       string(detail.Status),
		CustomerName: detail.CustomerName,
		TableNumber:  detail.TableNumber,
		CreatedAt:    detail.CreatedAt,
		UpdatedAt:    detail.UpdatedAt,
		Items:        items,
	}
}
