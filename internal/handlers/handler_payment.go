package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/SscSPs/kas_kelas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments and dues.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// RegisterPaymentRoutes registers all payment-related routes.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.GET("", h.listPayments)
		payments.GET("/:id", h.getPayment)
		payments.POST("", h.createPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)

		payments.POST("/upload", h.submitPayment)
		payments.PUT("/:id/acc", h.approvePayment)
		payments.PUT("/:id/reject", h.rejectPayment)

		payments.GET("/arrears", h.listArrears)
		payments.POST("/arrears", h.addManualArrears)
	}
}

// submitPayment godoc
// @Summary Submit a payment with proof
// @Description Stores the proof file, derives the number of weeks the amount covers from the dues setting, and records a pending payment.
// @Tags payments
// @Accept  multipart/form-data
// @Produce  json
// @Param   proofFile formData file true "Proof of payment image"
// @Param   userID formData string true "Paying user ID"
// @Param   amount formData string true "Payment amount"
// @Success 201 {object} dto.SubmitPaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or missing dues setting"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/upload [post]
func (h *paymentHandler) submitPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitPaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid form data: " + err.Error()})
		return
	}

	fileHeader, err := c.FormFile("proofFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Proof file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded proof file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	resp, err := h.paymentService.SubmitPayment(c.Request.Context(), req, fileHeader.Filename, file)
	if err != nil {
		respondServiceError(c, err, "Failed to submit payment")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// approvePayment godoc
// @Summary Approve a payment
// @Description Marks a pending or rejected payment as accepted. Approving an already accepted payment is a conflict.
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Payment already accepted"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id}/acc [put]
func (h *paymentHandler) approvePayment(c *gin.Context) {
	paymentID := c.Param("id")

	verifierUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.paymentService.ApprovePayment(c.Request.Context(), paymentID, verifierUserID); err != nil {
		respondServiceError(c, err, "Failed to approve payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment accepted"})
}

// rejectPayment godoc
// @Summary Reject a payment
// @Description Marks a payment as rejected. Rejecting an already rejected payment is a conflict.
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Payment already rejected"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id}/reject [put]
func (h *paymentHandler) rejectPayment(c *gin.Context) {
	paymentID := c.Param("id")

	verifierUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.paymentService.RejectPayment(c.Request.Context(), paymentID, verifierUserID); err != nil {
		respondServiceError(c, err, "Failed to reject payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment rejected"})
}

// listArrears godoc
// @Summary List arrears for all billable users
// @Description Recomputes every student's and parent's dues position as of now.
// @Tags payments
// @Produce  json
// @Success 200 {array} dto.UserArrearsResponse
// @Failure 400 {object} ErrorResponse "Dues setting missing or invalid"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/arrears [get]
func (h *paymentHandler) listArrears(c *gin.Context) {
	rows, err := h.paymentService.ListArrears(c.Request.Context(), time.Now())
	if err != nil {
		respondServiceError(c, err, "Failed to compute arrears")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserArrearsResponses(rows))
}

// addManualArrears godoc
// @Summary Record manual arrears for a user
// @Description Records weeks owed by hand as a MANUAL_ARREARS payment row, priced from the user's class dues setting.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   arrears body dto.AddArrearsRequest true "User and week count"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid week count or missing dues setting"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/arrears [post]
func (h *paymentHandler) addManualArrears(c *gin.Context) {
	var req dto.AddArrearsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.AddManualArrears(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to add arrears")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// createPayment godoc
// @Summary Create a payment record
// @Description Inserts a payment record directly, bypassing proof upload (admin tooling).
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Description Retrieves payments newest first with an opaque cursor for the next page.
// @Tags payments
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   nextToken query string false "Cursor from a previous response"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} ErrorResponse "Invalid cursor"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updatePayment godoc
// @Summary Update a payment record
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment record
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	if err := h.paymentService.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete payment")
		return
	}

	c.Status(http.StatusNoContent)
}
