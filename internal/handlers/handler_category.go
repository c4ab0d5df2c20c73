package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories and subcategories.
type categoryHandler struct {
	categoryService    portssvc.CategorySvcFacade
	subcategoryService portssvc.SubcategorySvcFacade
}

// RegisterCategoryRoutes registers routes related to categories and subcategories.
func RegisterCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade, subcategoryService portssvc.SubcategorySvcFacade) {
	h := &categoryHandler{
		categoryService:    categoryService,
		subcategoryService: subcategoryService,
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
	}

	subcategories := rg.Group("/subcategories")
	{
		subcategories.GET("", h.listSubcategories)
		subcategories.POST("", h.createSubcategory)
		subcategories.DELETE("/:subcategoryID", h.deleteSubcategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Description Lists the user's categories, or the default set when none are stored.
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(h.categoryService.ListCategories(c.Request.Context(), userID)))
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Category ID already used"
// @Failure 502 {object} dto.CategoryMutationResponse "Store rejected the write"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersistence) && category != nil {
			logger.Error("Failed to create category", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, dto.CategoryMutationResponse{
				SyncStatus: domain.Failed,
				Category:   dto.ToCategoryResponse(category),
				Error:      err.Error(),
			})
			return
		}
		respondServiceError(c, logger, err, "Failed to create category", "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.CategoryMutationResponse{
		SyncStatus: domain.Committed,
		Category:   dto.ToCategoryResponse(category),
	})
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Deletes a category and its subcategories. Refused while any transaction references it.
// @Tags categories
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Category is in use"
// @Failure 502 {object} dto.DeleteResponse "Store rejected the delete"
// @Security BearerAuth
// @Router /categories/{categoryID} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.categoryService.DeleteCategory(c.Request.Context(), userID, categoryID)
	respondDelete(c, logger, categoryID, err, "Failed to delete category")
}

// listSubcategories godoc
// @Summary List subcategories
// @Tags subcategories
// @Produce  json
// @Success 200 {array} dto.SubcategoryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /subcategories [get]
func (h *categoryHandler) listSubcategories(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListSubcategoryResponse(h.subcategoryService.ListSubcategories(c.Request.Context(), userID)))
}

// createSubcategory godoc
// @Summary Create a subcategory
// @Description The parent category must exist.
// @Tags subcategories
// @Accept  json
// @Produce  json
// @Param   subcategory body dto.CreateSubcategoryRequest true "Subcategory details"
// @Success 201 {object} dto.SubcategoryMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown parent"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.SubcategoryMutationResponse "Store rejected the write"
// @Security BearerAuth
// @Router /subcategories [post]
func (h *categoryHandler) createSubcategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSubcategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sub, err := h.subcategoryService.CreateSubcategory(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersistence) && sub != nil {
			logger.Error("Failed to create subcategory", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, dto.SubcategoryMutationResponse{
				SyncStatus:  domain.Failed,
				Subcategory: dto.ToSubcategoryResponse(sub),
				Error:       err.Error(),
			})
			return
		}
		respondServiceError(c, logger, err, "Failed to create subcategory", "Failed to create subcategory")
		return
	}

	c.JSON(http.StatusCreated, dto.SubcategoryMutationResponse{
		SyncStatus:  domain.Committed,
		Subcategory: dto.ToSubcategoryResponse(sub),
	})
}

// deleteSubcategory godoc
// @Summary Delete a subcategory
// @Tags subcategories
// @Produce  json
// @Param   subcategoryID path string true "Subcategory ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Subcategory not found"
// @Failure 409 {object} ErrorResponse "Subcategory is in use"
// @Failure 502 {object} dto.DeleteResponse "Store rejected the delete"
// @Security BearerAuth
// @Router /subcategories/{subcategoryID} [delete]
func (h *categoryHandler) deleteSubcategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	subcategoryID := c.Param("subcategoryID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.subcategoryService.DeleteSubcategory(c.Request.Context(), userID, subcategoryID)
	respondDelete(c, logger, subcategoryID, err, "Failed to delete subcategory")
}
