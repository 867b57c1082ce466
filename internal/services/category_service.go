package services

import (
	"errors"

	apperrors "github.com/evertonab28/finance/internal/errors"
	"github.com/evertonab28/finance/internal/models"
	"github.com/evertonab28/finance/internal/store"
)

// Display metadata applied when a category is created without any.
const (
	defaultCategoryColor = "#6366f1"
	defaultCategoryIcon  = "tag"
)

// categoryService handles category-related business logic.
type categoryService struct {
	store *store.Store
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(s *store.Store) CategoryServicer {
	return &categoryService{store: s}
}

// CreateCategory creates a new category. The tree is at most two levels
// deep: the parent, when given, must exist and must itself be a root.
func (s *categoryService) CreateCategory(
	name string,
	categoryType models.CategoryType,
	parentID *int,
	color string,
	icon string,
	isActive string,
) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if categoryType != models.CategoryTypeReceita && categoryType != models.CategoryTypeDespesa {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be receita or despesa")
	}

	if parentID != nil {
		parent, ok := s.store.GetCategoryByID(*parentID)
		if !ok {
			return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "parent category not found")
		}
		if parent.ParentID != nil {
			return nil, apperrors.ErrNestedSubcategory
		}
	}

	if color == "" {
		color = defaultCategoryColor
	}
	if icon == "" {
		icon = defaultCategoryIcon
	}
	if isActive == "" {
		isActive = "true"
	}

	category := s.store.CreateCategory(models.Category{
		Name:     name,
		Type:     categoryType,
		ParentID: parentID,
		Color:    color,
		Icon:     icon,
		IsActive: isActive,
	})
	return &category, nil
}

// GetCategories retrieves all categories, sorted by name.
func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.store.GetCategories(), nil
}

// GetCategoriesByType retrieves the active categories of a given type.
func (s *categoryService) GetCategoriesByType(categoryType models.CategoryType) ([]models.Category, error) {
	if categoryType != models.CategoryTypeReceita && categoryType != models.CategoryTypeDespesa {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be receita or despesa")
	}
	return s.store.GetCategoriesByType(categoryType), nil
}

// GetCategoryByID retrieves a category by id.
func (s *categoryService) GetCategoryByID(categoryID int) (*models.Category, error) {
	category, ok := s.store.GetCategoryByID(categoryID)
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &category, nil
}

// UpdateCategory merges the supplied patch into an existing category.
func (s *categoryService) UpdateCategory(categoryID int, patch models.CategoryPatch) (*models.Category, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name cannot be empty")
	}
	if patch.Type != nil && *patch.Type != models.CategoryTypeReceita && *patch.Type != models.CategoryTypeDespesa {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be receita or despesa")
	}

	if patch.ParentID != nil {
		if *patch.ParentID == categoryID {
			return nil, apperrors.ErrSelfParentCategory
		}
		parent, ok := s.store.GetCategoryByID(*patch.ParentID)
		if !ok {
			return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "parent category not found")
		}
		if parent.ParentID != nil {
			return nil, apperrors.ErrNestedSubcategory
		}
	}

	category, ok := s.store.UpdateCategory(categoryID, patch)
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &category, nil
}

// DeleteCategory removes a category unless the referential-integrity guard
// trips: a category referenced by a transaction or parenting another
// category cannot be deleted.
func (s *categoryService) DeleteCategory(categoryID int) error {
	switch err := s.store.DeleteCategory(categoryID); {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return apperrors.ErrCategoryNotFound
	case errors.Is(err, store.ErrCategoryInUse):
		return apperrors.ErrCategoryInUse
	case errors.Is(err, store.ErrCategoryHasChildren):
		return apperrors.ErrCategoryHasChildren
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}
