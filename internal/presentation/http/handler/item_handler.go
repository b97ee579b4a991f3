package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/freshkart/grocery-pos/internal/application/service"
	"github.com/freshkart/grocery-pos/internal/presentation/http/dto/request"
	"github.com/freshkart/grocery-pos/internal/presentation/http/dto/response"
)

// ItemHandler handles catalog item HTTP requests
type ItemHandler struct {
	catalogService *service.CatalogService
}

// NewItemHandler creates a new item handler
func NewItemHandler(catalogService *service.CatalogService) *ItemHandler {
	return &ItemHandler{catalogService: catalogService}
}

// Create handles item creation
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		Name:     req.Name,
		Category: req.Category,
		Cost:     req.Cost,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Get handles retrieving a single item
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.catalogService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// List handles listing items
func (h *ItemHandler) List(c *gin.Context) {
	var req request.ItemFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, err := h.catalogService.ListItems(c.Request.Context(), req.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved successfully", items)
}
