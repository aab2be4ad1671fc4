package dto

type CategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}
