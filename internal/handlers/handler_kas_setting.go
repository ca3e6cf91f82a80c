package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/SscSPs/kas_kelas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// kasSettingHandler handles HTTP requests related to weekly dues settings.
type kasSettingHandler struct {
	kasSettingService portssvc.KasSettingSvcFacade
}

func newKasSettingHandler(ks portssvc.KasSettingSvcFacade) *kasSettingHandler {
	return &kasSettingHandler{
		kasSettingService: ks,
	}
}

// registerKasSettingRoutes registers all dues-setting routes.
func registerKasSettingRoutes(rg *gin.RouterGroup, kasSettingService portssvc.KasSettingSvcFacade) {
	h := newKasSettingHandler(kasSettingService)

	settings := rg.Group("/kas-settings")
	{
		settings.GET("", h.listKasSettings)
		settings.GET("/:id", h.getKasSetting)
		settings.POST("", h.createKasSetting)
		settings.PUT("/:id", h.updateKasSetting)
		settings.DELETE("/:id", h.deleteKasSetting)

		settings.POST("/add-balance", h.addBalance)
	}
}

// createKasSetting godoc
// @Summary Create a weekly dues setting
// @Description Configures how much each member owes per week and the date dues began accruing.
// @Tags kas-settings
// @Accept  json
// @Produce  json
// @Param   setting body dto.CreateKasSettingRequest true "Dues configuration"
// @Success 201 {object} dto.KasSettingResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /kas-settings [post]
func (h *kasSettingHandler) createKasSetting(c *gin.Context) {
	var req dto.CreateKasSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	setting, err := h.kasSettingService.CreateKasSetting(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create kas setting")
		return
	}

	c.JSON(http.StatusCreated, dto.ToKasSettingResponse(setting))
}

// addBalance godoc
// @Summary Top up the fund balance
// @Description Records a manual top-up as an already-accepted payment attributed to the acting admin. It raises the saldo without changing anyone's dues position.
// @Tags kas-settings
// @Accept  json
// @Produce  json
// @Param   topup body dto.AddBalanceRequest true "Top-up amount"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /kas-settings/add-balance [post]
func (h *kasSettingHandler) addBalance(c *gin.Context) {
	var req dto.AddBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.kasSettingService.AddBalance(c.Request.Context(), req, adminUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to add balance")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getKasSetting godoc
// @Summary Get a dues setting by ID
// @Tags kas-settings
// @Produce  json
// @Param   id path string true "Setting ID"
// @Success 200 {object} dto.KasSettingResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /kas-settings/{id} [get]
func (h *kasSettingHandler) getKasSetting(c *gin.Context) {
	setting, err := h.kasSettingService.GetKasSettingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve kas setting")
		return
	}

	c.JSON(http.StatusOK, dto.ToKasSettingResponse(setting))
}

// listKasSettings godoc
// @Summary List dues settings
// @Tags kas-settings
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListKasSettingsResponse
// @Security BearerAuth
// @Router /kas-settings [get]
func (h *kasSettingHandler) listKasSettings(c *gin.Context) {
	var params dto.ListKasSettingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	settings, err := h.kasSettingService.ListKasSettings(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list kas settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToListKasSettingsResponse(settings))
}

// updateKasSetting godoc
// @Summary Update a dues setting
// @Tags kas-settings
// @Accept  json
// @Produce  json
// @Param   id path string true "Setting ID"
// @Param   setting body dto.UpdateKasSettingRequest true "Fields to update"
// @Success 200 {object} dto.KasSettingResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /kas-settings/{id} [put]
func (h *kasSettingHandler) updateKasSetting(c *gin.Context) {
	var req dto.UpdateKasSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	setting, err := h.kasSettingService.UpdateKasSetting(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update kas setting")
		return
	}

	c.JSON(http.StatusOK, dto.ToKasSettingResponse(setting))
}

// deleteKasSetting godoc
// @Summary Delete a dues setting
// @Tags kas-settings
// @Param   id path string true "Setting ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /kas-settings/{id} [delete]
func (h *kasSettingHandler) deleteKasSetting(c *gin.Context) {
	if err := h.kasSettingService.DeleteKasSetting(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete kas setting")
		return
	}

	c.Status(http.StatusNoContent)
}
