package request

// CreateServiceRequest represents a catalog service creation request
type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required,min=2,max=255"`
	Code            string  `json:"code" binding:"omitempty,max=100"`
	Category        string  `json:"category" binding:"omitempty,max=100"`
	Description     *string `json:"description"`
	Price           float64 `json:"price" binding:"min=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"omitempty,min=0"`
}

// UpdateServiceRequest represents a catalog service update request
type UpdateServiceRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Code            *string  `json:"code" binding:"omitempty,min=1,max=100"`
	Category        *string  `json:"category" binding:"omitempty,max=100"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" binding:"omitempty,min=0"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,min=0"`
	Active          *bool    `json:"active"`
}

// ImportServiceRow represents a single row in a bulk service import
type ImportServiceRow struct {
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Description     string  `json:"description"`
}
