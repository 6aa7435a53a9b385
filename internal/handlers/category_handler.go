package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"butce/internal/flash"
	"butce/internal/middleware"
	"butce/internal/services"
)

const categoriesPath = "/categories"

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the new category form. MonthlyLimit is a
// decimal string; blank means no limit.
type CreateCategoryRequest struct {
	Name         string `form:"name" json:"name" binding:"required,max=100"`
	Color        string `form:"color" json:"color" binding:"display_color"`
	MonthlyLimit string `form:"monthly_limit" json:"monthly_limit"`
}

// UpdateCategoryRequest represents the category edit form. A present but
// blank MonthlyLimit removes the limit.
type UpdateCategoryRequest struct {
	Name         *string `form:"name" json:"name" binding:"omitempty,max=100"`
	Color        *string `form:"color" json:"color" binding:"omitempty,display_color"`
	MonthlyLimit *string `form:"monthly_limit" json:"monthly_limit"`
}

// ListCategories renders every category with its limit.
// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Success     200 {array} services.CategoryView
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context, s *middleware.Session) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}
	page(c, s, gin.H{"categories": categories})
}

// CreateCategory handles the new category form
// @Summary     Create a category
// @Tags        categories
// @Accept      x-www-form-urlencoded
// @Param       name          formData string true  "Category name"
// @Param       color         formData string false "Display color"
// @Param       monthly_limit formData string false "Monthly spending limit"
// @Success     303 "Redirect to /categories"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context, _ *middleware.Session) {
	var req CreateCategoryRequest
	if err := bind(c, &req); err != nil {
		redirectWithError(c, categoriesPath, err)
		return
	}

	limit, err := parseLimit(req.MonthlyLimit)
	if err != nil {
		redirectWithError(c, categoriesPath, err)
		return
	}

	category, err := h.categoryService.CreateCategory(services.CategoryInput{
		Name:         req.Name,
		Color:        req.Color,
		MonthlyLimit: limit,
	})
	if err != nil {
		redirectWithError(c, categoriesPath, err)
		return
	}
	flash.Write(c, flash.To(categoriesPath, flash.Success(fmt.Sprintf("Category %q added.", category.Name))))
}

// UpdateCategory handles the category edit form
// @Summary     Update a category
// @Tags        categories
// @Accept      x-www-form-urlencoded
// @Param       id path int true "Category ID"
// @Success     303 "Redirect to /categories"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id}/update [post]
func (h *CategoryHandler) UpdateCategory(c *gin.Context, _ *middleware.Session) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if _, err := h.categoryService.GetCategoryByID(id); err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := bind(c, &req); err != nil {
		redirectWithError(c, categoriesPath, err)
		return
	}

	upd := services.CategoryUpdate{Name: req.Name, Color: req.Color}
	if req.MonthlyLimit != nil {
		if strings.TrimSpace(*req.MonthlyLimit) == "" {
			upd.ClearLimit = true
		} else {
			limit, err := parseLimit(*req.MonthlyLimit)
			if err != nil {
				redirectWithError(c, categoriesPath, err)
				return
			}
			upd.MonthlyLimit = limit
		}
	}

	category, err := h.categoryService.UpdateCategory(id, upd)
	if err != nil {
		redirectWithError(c, categoriesPath, err)
		return
	}
	flash.Write(c, flash.To(categoriesPath, flash.Success(fmt.Sprintf("Category %q updated.", category.Name))))
}

// DeleteCategory deletes a category together with its transactions
// @Summary     Delete a category
// @Tags        categories
// @Param       id path int true "Category ID"
// @Success     303 "Redirect to /categories"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id}/delete [post]
func (h *CategoryHandler) DeleteCategory(c *gin.Context, _ *middleware.Session) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		redirectWithError(c, categoriesPath, err)
		return
	}
	flash.Write(c, flash.To(categoriesPath, flash.Success("Category deleted.")))
}
