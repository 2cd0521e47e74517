package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// PaymentMethodHandler handles payment-method requests, including the
// aggregated credit-card detail view.
type PaymentMethodHandler struct {
	paymentMethodService services.PaymentMethodServicer
	billingCycleService  services.BillingCycleServicer
	paymentService       services.CreditCardPaymentServicer
	activityLogService   services.ActivityLogServicer
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler.
func NewPaymentMethodHandler(
	paymentMethodService services.PaymentMethodServicer,
	billingCycleService services.BillingCycleServicer,
	paymentService services.CreditCardPaymentServicer,
	activityLogService services.ActivityLogServicer,
) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		paymentMethodService: paymentMethodService,
		billingCycleService:  billingCycleService,
		paymentService:       paymentService,
		activityLogService:   activityLogService,
	}
}

// CreatePaymentMethodRequest represents the payload for creating a payment method.
type CreatePaymentMethodRequest struct {
	Type            models.PaymentMethodType `json:"type" binding:"required,payment_method_type"`
	DisplayName     string                   `json:"display_name" binding:"required,min=1,max=100"`
	FullName        string                   `json:"full_name"`
	CreditLimit     float64                  `json:"credit_limit" binding:"omitempty,gte=0"`
	CurrentBalance  float64                  `json:"current_balance"`
	PaymentDueDay   *int                     `json:"payment_due_day" binding:"omitempty,min=1,max=31"`
	BillingCycleDay *int                     `json:"billing_cycle_day" binding:"omitempty,min=1,max=31"`
}

// UpdatePaymentMethodRequest represents the payload for updating a payment method.
type UpdatePaymentMethodRequest struct {
	DisplayName     *string  `json:"display_name" binding:"omitempty,min=1,max=100"`
	FullName        *string  `json:"full_name"`
	CreditLimit     *float64 `json:"credit_limit" binding:"omitempty,gte=0"`
	CurrentBalance  *float64 `json:"current_balance"`
	PaymentDueDay   *int     `json:"payment_due_day" binding:"omitempty,min=1,max=31"`
	BillingCycleDay *int     `json:"billing_cycle_day" binding:"omitempty,min=1,max=31"`
	IsActive        *bool    `json:"is_active"`
}

// SectionError names a credit-card detail section that failed to load.
type SectionError struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

// CreditCardDetailResponse aggregates everything about one card. Sections
// that fail are null/empty and reported in Errors; the endpoint itself
// always answers 200 once the card is known to exist.
type CreditCardDetailResponse struct {
	Card               *models.PaymentMethod        `json:"card"`
	Payments           []models.CreditCardPayment   `json:"payments"`
	StatementBalance   *models.BillingCycle         `json:"statementBalance"`
	CurrentCycleStatus *services.CycleStatus        `json:"currentCycleStatus"`
	BillingCycles      []models.UnifiedBillingCycle `json:"billingCycles"`
	Errors             []SectionError               `json:"errors"`
}

// CreatePaymentMethod handles creating a payment method.
// @Summary     Create a payment method
// @Tags        payment-methods
// @Accept      json
// @Produce     json
// @Param       request body CreatePaymentMethodRequest true "Payment method details"
// @Success     201 {object} models.PaymentMethod "Payment method created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /payment-methods [post]
func (h *PaymentMethodHandler) CreatePaymentMethod(c *gin.Context) {
	var req CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	pm, err := h.paymentMethodService.CreatePaymentMethod(services.CreatePaymentMethodInput{
		Type:            req.Type,
		DisplayName:     req.DisplayName,
		FullName:        req.FullName,
		CreditLimit:     req.CreditLimit,
		CurrentBalance:  req.CurrentBalance,
		PaymentDueDay:   req.PaymentDueDay,
		BillingCycleDay: req.BillingCycleDay,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("payment_method_created", "payment_method", pm.ID,
		"Created payment method "+pm.DisplayName,
		map[string]any{"type": pm.Type})

	c.JSON(http.StatusCreated, gin.H{"payment_method": pm})
}

// GetPaymentMethods handles listing payment methods.
// @Summary     List payment methods
// @Tags        payment-methods
// @Produce     json
// @Param       include_inactive query bool false "Include deactivated methods"
// @Success     200 {object} map[string]any "Payment methods"
// @Router      /payment-methods [get]
func (h *PaymentMethodHandler) GetPaymentMethods(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	methods, err := h.paymentMethodService.GetPaymentMethods(includeInactive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_methods": methods})
}

// GetPaymentMethod handles retrieving one payment method.
// @Summary     Get payment method by ID
// @Tags        payment-methods
// @Produce     json
// @Param       id path int true "Payment method ID"
// @Success     200 {object} models.PaymentMethod "Payment method"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Router      /payment-methods/{id} [get]
func (h *PaymentMethodHandler) GetPaymentMethod(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	pm, err := h.paymentMethodService.GetPaymentMethodByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_method": pm})
}

// UpdatePaymentMethod handles a partial payment-method update.
// @Summary     Update payment method
// @Tags        payment-methods
// @Accept      json
// @Produce     json
// @Param       id      path int true "Payment method ID"
// @Param       request body UpdatePaymentMethodRequest true "Fields to update"
// @Success     200 {object} models.PaymentMethod "Updated payment method"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Router      /payment-methods/{id} [put]
func (h *PaymentMethodHandler) UpdatePaymentMethod(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	pm, err := h.paymentMethodService.UpdatePaymentMethod(id, services.UpdatePaymentMethodInput{
		DisplayName:     req.DisplayName,
		FullName:        req.FullName,
		CreditLimit:     req.CreditLimit,
		CurrentBalance:  req.CurrentBalance,
		PaymentDueDay:   req.PaymentDueDay,
		BillingCycleDay: req.BillingCycleDay,
		IsActive:        req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("payment_method_updated", "payment_method", id,
		"Updated payment method "+pm.DisplayName, nil)

	c.JSON(http.StatusOK, gin.H{"payment_method": pm})
}

// DeletePaymentMethod handles deleting a payment method.
// @Summary     Delete payment method
// @Tags        payment-methods
// @Produce     json
// @Param       id path int true "Payment method ID"
// @Success     200 {object} MessageResponse "Payment method deleted"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Router      /payment-methods/{id} [delete]
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.paymentMethodService.DeletePaymentMethod(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("payment_method_deleted", "payment_method", id,
		"Deleted payment method", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted successfully"})
}

// GetCreditCardDetail handles the aggregated card view. Section failures
// degrade that section to null/empty and add an entry to errors; the
// response stays 200 so the frontend can render what loaded.
// @Summary     Get aggregated credit card detail
// @Tags        payment-methods
// @Produce     json
// @Param       id path int true "Payment method ID"
// @Success     200 {object} CreditCardDetailResponse "Card detail with per-section errors"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Router      /payment-methods/{id}/credit-card-detail [get]
func (h *PaymentMethodHandler) GetCreditCardDetail(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	card, err := h.paymentMethodService.GetPaymentMethodByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail := CreditCardDetailResponse{Card: card, Errors: []SectionError{}}

	if payments, err := h.paymentService.GetPayments(id); err != nil {
		detail.Payments = []models.CreditCardPayment{}
		detail.Errors = append(detail.Errors, SectionError{Section: "payments", Message: err.Error()})
	} else {
		detail.Payments = payments
	}

	if balance, err := h.billingCycleService.GetLatestStatementBalance(id); err != nil {
		detail.Errors = append(detail.Errors, SectionError{Section: "statementBalance", Message: err.Error()})
	} else {
		detail.StatementBalance = balance
	}

	if status, err := h.billingCycleService.GetCurrentCycleStatus(id); err != nil {
		detail.Errors = append(detail.Errors, SectionError{Section: "currentCycleStatus", Message: err.Error()})
	} else {
		detail.CurrentCycleStatus = status
	}

	if cycles, err := h.billingCycleService.GetUnifiedBillingCycles(id, 0, false); err != nil {
		detail.BillingCycles = []models.UnifiedBillingCycle{}
		detail.Errors = append(detail.Errors, SectionError{Section: "billingCycles", Message: err.Error()})
	} else {
		detail.BillingCycles = cycles.Cycles
	}

	c.JSON(http.StatusOK, detail)
}
