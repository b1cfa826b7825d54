package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/SscSPs/money_records_app/internal/dto"
	"github.com/SscSPs/money_records_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
	queryService portssvc.OrderQuerySvc
}

func newOrderHandler(os portssvc.OrderSvcFacade, qs portssvc.OrderQuerySvc) *orderHandler {
	return &orderHandler{orderService: os, queryService: qs}
}

// RegisterOrderRoutes registers routes related to orders on an authenticated group.
func RegisterOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade, queryService portssvc.OrderQuerySvc) {
	h := newOrderHandler(orderService, queryService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/query", h.queryOrders)
		orders.DELETE("/:id", h.deleteOrder)
	}
}

// createOrder godoc
// @Summary Record a new order
// @Description Creates an order for the logged-in user. A missing date defaults to now.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List orders
// @Description Lists every order of the logged-in user, newest first.
// @Tags orders
// @Produce json
// @Success 200 {array} dto.OrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

// queryOrders godoc
// @Summary Query orders
// @Description Filters the logged-in user's orders, returns one page of them, the total match count and per-type sums over all matches.
// @Description Date bounds are RFC3339 and only applied when both are present and valid.
// @Tags orders
// @Produce json
// @Param page query int false "Page number, 1-based" default(1)
// @Param page_size query int false "Page size" default(8)
// @Param name query string false "Substring of the order name"
// @Param order_type query string false "Exact order type"
// @Param date_start query string false "Inclusive lower date bound (RFC3339)"
// @Param date_end query string false "Inclusive upper date bound (RFC3339)"
// @Success 200 {object} dto.QueryOrdersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/query [get]
func (h *orderHandler) queryOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var params dto.QueryOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for QueryOrders", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid query parameters: " + err.Error()})
		return
	}

	result, err := h.queryService.QueryOrders(c.Request.Context(), userID, params.ToOrderQuery())
	if err != nil {
		respondWithError(c, err, "Failed to query orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToQueryOrdersResponse(result))
}

// deleteOrder godoc
// @Summary Delete an order
// @Tags orders
// @Param id path string true "Order ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid order ID"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), userID, orderID); err != nil {
		respondWithError(c, err, "Failed to delete order")
		return
	}

	c.Status(http.StatusNoContent)
}
