package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/application/service"
	"github.com/freshkart/grocery-pos/internal/domain/enum"
	"github.com/freshkart/grocery-pos/internal/presentation/http/dto/request"
	"github.com/freshkart/grocery-pos/internal/presentation/http/dto/response"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService   *service.OrderService
	paymentService *service.PaymentService
	invoiceService *service.InvoiceService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	orderService *service.OrderService,
	paymentService *service.PaymentService,
	invoiceService *service.InvoiceService,
) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		paymentService: paymentService,
		invoiceService: invoiceService,
	}
}

// Create handles order creation. The authenticated user is recorded as
// the cashier.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines := make([]service.OrderLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.OrderLineInput{
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CustomerID:     req.CustomerID,
		CashierID:      *userID,
		Lines:          lines,
		DiscountAmount: req.DiscountAmount,
		TaxPercent:     req.TaxPercent,
		Notes:          req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles retrieving a single order with its lines and payments
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Pay records a payment against an order
func (h *OrderHandler) Pay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.paymentService.AddPayment(c.Request.Context(), &service.AddPaymentInput{
		OrderID:         id,
		Method:          enum.PaymentMethod(req.Method),
		Amount:          req.Amount,
		TxnRef:          req.TxnRef,
		GenerateInvoice: req.GenerateInvoice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", result)
}

// Invoice issues (or re-fetches) the invoice for a settled order
func (h *OrderHandler) Invoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	invoice, err := h.invoiceService.IssueInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice issued successfully", invoice)
}

// Cancel voids an order, restoring stock if it was already paid
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.CancelOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", order)
}
