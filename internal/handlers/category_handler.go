package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/store"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	store *store.Store
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(s *store.Store) *CategoryHandler {
	return &CategoryHandler{store: s}
}

// CategoryRequest represents the payload for creating or updating a category
type CategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required,category_type"`
	Icon  string `json:"icon" binding:"omitempty,icon_name"`
	Color string `json:"color" binding:"omitempty,hsl_color"`
}

func (r CategoryRequest) toCategory() models.Category {
	return models.Category{
		Name:  r.Name,
		Type:  models.CategoryType(r.Type),
		Icon:  r.Icon,
		Color: r.Color,
	}
}

// CreateCategory adds a new category
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	created, err := h.store.AddCategory(req.toCategory())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": created})
}

// ListCategories returns all categories, optionally filtered by type
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories := h.store.State().Categories

	if catType := c.Query("type"); catType != "" {
		filtered := make([]models.Category, 0, len(categories))
		for _, cat := range categories {
			if string(cat.Type) == catType {
				filtered = append(filtered, cat)
			}
		}
		categories = filtered
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategoryByID returns a single category
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	category, ok := h.store.Category(c.Param("id"))
	if !ok {
		respondWithError(c, apperrors.ErrCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// UpdateCategory replaces an existing category
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	category := req.toCategory()
	category.ID = c.Param("id")

	updated, err := h.store.UpdateCategory(category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": updated})
}

// DeleteCategory removes a category. Transactions referencing it are left
// untouched and show up as "Uncategorized" from then on.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.store.DeleteCategory(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
