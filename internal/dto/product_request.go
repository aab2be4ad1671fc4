package dto

type ProductRequest struct {
	ID           string  `json:"-"`
	Name         string  `json:"name" validate:"required"`
	Brand        string  `json:"brand"`
	CategoryID   string  `json:"categoryId" validate:"required"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	CountInStock int64   `json:"countInStock" validate:"gte=0"`
}
