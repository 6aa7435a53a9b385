package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "butce/internal/errors"
	"butce/internal/models"
	"butce/internal/money"
)

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "secondary"

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a category with an optional monthly limit.
func (s *categoryService) CreateCategory(in CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if in.MonthlyLimit != nil && *in.MonthlyLimit < 0 {
		return nil, apperrors.ErrNegativeLimit
	}
	if err := s.checkNameFree(name, 0); err != nil {
		return nil, err
	}

	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = DefaultCategoryColor
	}

	category := &models.Category{
		Name:         name,
		Color:        color,
		MonthlyLimit: in.MonthlyLimit,
	}
	if err := s.db.Create(category).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateCategoryName
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// ListCategories returns every category ordered by name.
func (s *categoryService) ListCategories() ([]CategoryView, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		v := CategoryView{Category: c}
		if c.MonthlyLimit != nil {
			limit := money.Amount(*c.MonthlyLimit)
			v.Limit = &limit
		}
		views = append(views, v)
	}
	return views, nil
}

// GetCategoryByID retrieves a category by ID
func (s *categoryService) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory applies the non-nil fields of upd. A blank color keeps the
// current one.
func (s *categoryService) UpdateCategory(id uint, upd CategoryUpdate) (*models.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
		}
		if name != category.Name {
			if err := s.checkNameFree(name, category.ID); err != nil {
				return nil, err
			}
		}
		category.Name = name
	}
	if upd.Color != nil {
		if color := strings.TrimSpace(*upd.Color); color != "" {
			category.Color = color
		}
	}
	switch {
	case upd.ClearLimit:
		category.MonthlyLimit = nil
	case upd.MonthlyLimit != nil:
		if *upd.MonthlyLimit < 0 {
			return nil, apperrors.ErrNegativeLimit
		}
		limit := *upd.MonthlyLimit
		category.MonthlyLimit = &limit
	}

	if err := s.db.Save(category).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateCategoryName
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// DeleteCategory deletes a category together with its transactions.
func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.GetCategoryByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&models.Category{}, id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

func (s *categoryService) checkNameFree(name string, exceptID uint) error {
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("name = ? AND id <> ?", name, exceptID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateCategoryName
	}
	return nil
}
