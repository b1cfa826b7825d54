package dto

import "github.com/SscSPs/money_records_app/internal/core/domain"

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	ParentID     *string `json:"parent_id" binding:"omitempty,uuid"`
	CategoryType string  `json:"category_type" binding:"required,max=64"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ParentID     *string `json:"parent_id"`
	CategoryType string  `json:"category_type"`
}

// ToCategoryResponse converts a domain.Category to its DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:           c.CategoryID.String(),
		Name:         c.Name,
		CategoryType: c.CategoryType,
	}
	if c.ParentID != nil {
		parent := c.ParentID.String()
		resp.ParentID = &parent
	}
	return resp
}

// ToListCategoryResponse converts a slice of categories.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
