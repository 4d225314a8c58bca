package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/app/services"
	"github.com/yigit/devacademy/internal/middleware"
)

// LanguageController handles programming language endpoints
type LanguageController struct {
	languageService services.LanguageService
}

// NewLanguageController creates a new LanguageController
func NewLanguageController(languageService services.LanguageService) *LanguageController {
	return &LanguageController{languageService: languageService}
}

// CreateLanguage godoc
// @Summary Create a language
// @Tags languages
// @Accept json
// @Produce json
// @Param request body dto.LanguageRequest true "Language"
// @Success 201 {object} dto.APIResponse{data=models.Language}
// @Failure 400 {object} dto.ErrorResponse "Name missing or already used"
// @Router /languages [post]
func (c *LanguageController) CreateLanguage(ctx *gin.Context) {
	var req dto.LanguageRequest
	if err := middleware.BindJSON(ctx, &req, nil); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	language, err := c.languageService.CreateLanguage(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(language, "Language created successfully"))
}

// GetAllLanguages godoc
// @Summary List languages
// @Tags languages
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Language}
// @Router /languages [get]
func (c *LanguageController) GetAllLanguages(ctx *gin.Context) {
	languages, err := c.languageService.GetAllLanguages(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(languages, ""))
}

// GetLanguageByID godoc
// @Summary Get a language
// @Tags languages
// @Produce json
// @Param id path int true "Language ID"
// @Success 200 {object} dto.APIResponse{data=models.Language}
// @Failure 404 {object} dto.ErrorResponse "Language not found"
// @Router /languages/{id} [get]
func (c *LanguageController) GetLanguageByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	language, err := c.languageService.GetLanguageByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(language, ""))
}

// UpdateLanguage godoc
// @Summary Rename a language
// @Tags languages
// @Accept json
// @Produce json
// @Param id path int true "Language ID"
// @Param request body dto.LanguageRequest true "Language"
// @Success 200 {object} dto.APIResponse{data=models.Language}
// @Failure 400 {object} dto.ErrorResponse "Name missing or already used"
// @Failure 404 {object} dto.ErrorResponse "Language not found"
// @Router /languages/{id} [patch]
func (c *LanguageController) UpdateLanguage(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.LanguageRequest
	if err := middleware.BindJSON(ctx, &req, nil); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	language, err := c.languageService.UpdateLanguage(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(language, "Language updated successfully"))
}

// DeleteLanguage godoc
// @Summary Delete a language
// @Tags languages
// @Produce json
// @Param id path int true "Language ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Language still used by courses"
// @Failure 404 {object} dto.ErrorResponse "Language not found"
// @Router /languages/{id} [delete]
func (c *LanguageController) DeleteLanguage(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.languageService.DeleteLanguage(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Language deleted successfully"))
}
