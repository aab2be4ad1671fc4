package dto

import "github.com/quickbasket/quickbasket-api/internal/domain"

// ProductResponse carries the stored product plus the category display name
// resolved at read time. Products reference categories by id, so a category
// rename shows up here without touching product documents.
type ProductResponse struct {
	domain.Product
	Category string `json:"category"`
}
