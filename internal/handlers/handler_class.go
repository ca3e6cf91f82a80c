package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/SscSPs/kas_kelas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// classHandler handles HTTP requests related to classes.
type classHandler struct {
	classService portssvc.ClassSvcFacade
}

func newClassHandler(cs portssvc.ClassSvcFacade) *classHandler {
	return &classHandler{
		classService: cs,
	}
}

// registerClassRoutes registers all class-related routes.
func registerClassRoutes(rg *gin.RouterGroup, classService portssvc.ClassSvcFacade) {
	h := newClassHandler(classService)

	classes := rg.Group("/classes")
	{
		classes.GET("", h.listClasses)
		classes.GET("/:id", h.getClass)
		classes.POST("", h.createClass)
		classes.PUT("/:id", h.updateClass)
		classes.DELETE("/:id", h.deleteClass)
	}
}

// createClass godoc
// @Summary Create a class
// @Tags classes
// @Accept  json
// @Produce  json
// @Param   class body dto.CreateClassRequest true "Class details"
// @Success 201 {object} dto.ClassResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /classes [post]
func (h *classHandler) createClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	class, err := h.classService.CreateClass(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create class")
		return
	}

	c.JSON(http.StatusCreated, dto.ToClassResponse(class))
}

// getClass godoc
// @Summary Get a class by ID
// @Tags classes
// @Produce  json
// @Param   id path string true "Class ID"
// @Success 200 {object} dto.ClassResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /classes/{id} [get]
func (h *classHandler) getClass(c *gin.Context) {
	class, err := h.classService.GetClassByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve class")
		return
	}

	c.JSON(http.StatusOK, dto.ToClassResponse(class))
}

// listClasses godoc
// @Summary List classes
// @Tags classes
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListClassesResponse
// @Security BearerAuth
// @Router /classes [get]
func (h *classHandler) listClasses(c *gin.Context) {
	var params dto.ListClassesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	classes, err := h.classService.ListClasses(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list classes")
		return
	}

	c.JSON(http.StatusOK, dto.ToListClassesResponse(classes))
}

// updateClass godoc
// @Summary Update a class
// @Tags classes
// @Accept  json
// @Produce  json
// @Param   id path string true "Class ID"
// @Param   class body dto.UpdateClassRequest true "Fields to update"
// @Success 200 {object} dto.ClassResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /classes/{id} [put]
func (h *classHandler) updateClass(c *gin.Context) {
	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	class, err := h.classService.UpdateClass(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update class")
		return
	}

	c.JSON(http.StatusOK, dto.ToClassResponse(class))
}

// deleteClass godoc
// @Summary Delete a class
// @Tags classes
// @Param   id path string true "Class ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /classes/{id} [delete]
func (h *classHandler) deleteClass(c *gin.Context) {
	if err := h.classService.DeleteClass(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete class")
		return
	}

	c.Status(http.StatusNoContent)
}
