package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/evertonab28/finance/internal/errors"
	"github.com/evertonab28/finance/internal/models"
	"github.com/evertonab28/finance/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category.
// Color and icon default server-side when omitted.
type CreateCategoryRequest struct {
	Name     string              `json:"name" binding:"required"`
	Type     models.CategoryType `json:"type" binding:"required,category_type"`
	ParentID *int                `json:"parentId" binding:"omitempty,min=1"`
	Color    string              `json:"color" binding:"omitempty,hex_color"`
	Icon     string              `json:"icon"`
	IsActive string              `json:"isActive" binding:"omitempty,oneof=true false"`
}

// UpdateCategoryRequest represents the request payload for partially
// updating a category. Absent fields leave the stored value unchanged.
type UpdateCategoryRequest struct {
	Name     *string              `json:"name"`
	Type     *models.CategoryType `json:"type" binding:"omitempty,category_type"`
	ParentID *int                 `json:"parentId" binding:"omitempty,min=1"`
	Color    *string              `json:"color" binding:"omitempty,hex_color"`
	Icon     *string              `json:"icon"`
	IsActive *string              `json:"isActive" binding:"omitempty,oneof=true false"`
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a new transaction category; the parent, when given, must be a root category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Parent category not found"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(
		req.Name,
		req.Type,
		req.ParentID,
		req.Color,
		req.Icon,
		req.IsActive,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetCategories handles the retrieval of all categories
// @Summary     Get all categories
// @Description Get all categories sorted ascending by name
// @Tags        categories
// @Accept      json
// @Produce     json
// @Success     200 {array} models.Category "List of categories"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategoriesByType handles the retrieval of active categories of one type
// @Summary     Get categories by type
// @Description Get the active categories of the given type (receita/despesa)
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       type path string true "Category type"
// @Success     200 {array} models.Category "List of categories"
// @Failure     400 {object} ErrorResponse "Invalid category type"
// @Router      /categories/type/{type} [get]
func (h *CategoryHandler) GetCategoriesByType(c *gin.Context) {
	categories, err := h.categoryService.GetCategoriesByType(models.CategoryType(c.Param("type")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategoryByID handles the retrieval of a specific category
// @Summary     Get category by ID
// @Description Get a single category by ID
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} models.Category "Category details"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// UpdateCategory handles partially updating a category
// @Summary     Update category
// @Description Merge the supplied fields into an existing category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path int true "Category ID"
// @Param       request body UpdateCategoryRequest true "Fields to update"
// @Success     200 {object} models.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input or category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.UpdateCategory(categoryID, models.CategoryPatch{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
		Color:    req.Color,
		Icon:     req.Icon,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles deleting a category
// @Summary     Delete category
// @Description Delete a category by ID; fails with 409 while transactions or subcategories reference it
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     204 "Category deleted"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category has dependents"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
