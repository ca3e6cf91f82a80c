package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// saldoHandler exposes the derived fund balance.
type saldoHandler struct {
	saldoService portssvc.SaldoSvcFacade
}

func newSaldoHandler(ss portssvc.SaldoSvcFacade) *saldoHandler {
	return &saldoHandler{
		saldoService: ss,
	}
}

// RegisterSaldoRoutes registers the saldo route.
func RegisterSaldoRoutes(rg *gin.RouterGroup, saldoService portssvc.SaldoSvcFacade) {
	h := newSaldoHandler(saldoService)
	rg.GET("/saldo", h.getSaldo)
}

// getSaldo godoc
// @Summary Get the fund balance
// @Description Returns total accepted income, total expenses, and the resulting balance, recomputed from the full record set.
// @Tags saldo
// @Produce  json
// @Success 200 {object} dto.SaldoResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /saldo [get]
func (h *saldoHandler) getSaldo(c *gin.Context) {
	saldo, err := h.saldoService.GetSaldo(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to compute saldo")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaldoResponse(saldo))
}
