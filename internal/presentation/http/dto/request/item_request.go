package request

// CreateItemRequest represents an item creation request
type CreateItemRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Category *string `json:"category" binding:"omitempty,max=100"`
	Cost     float64 `json:"cost" binding:"min=0"`
	Quantity int     `json:"quantity" binding:"min=0"`
}

// ItemFilterRequest represents item filter parameters
type ItemFilterRequest struct {
	Search string `form:"search"`
}
