package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// CreditCardHandler handles credit-card payments and uploaded statements.
type CreditCardHandler struct {
	paymentService     services.CreditCardPaymentServicer
	statementService   services.StatementServicer
	activityLogService services.ActivityLogServicer
}

// NewCreditCardHandler creates a new CreditCardHandler.
func NewCreditCardHandler(paymentService services.CreditCardPaymentServicer, statementService services.StatementServicer, activityLogService services.ActivityLogServicer) *CreditCardHandler {
	return &CreditCardHandler{
		paymentService:     paymentService,
		statementService:   statementService,
		activityLogService: activityLogService,
	}
}

// CreatePaymentRequest represents the payload for recording a card payment.
type CreatePaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate string  `json:"payment_date" binding:"required,dateonly"`
	Notes       string  `json:"notes"`
}

// CreatePayment handles recording a payment toward a card balance.
// @Summary     Record a credit card payment
// @Tags        credit-cards
// @Accept      json
// @Produce     json
// @Param       id      path int true "Payment method ID"
// @Param       request body CreatePaymentRequest true "Payment details"
// @Success     201 {object} models.CreditCardPayment "Payment recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or not a credit card"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Router      /payment-methods/{id}/payments [post]
func (h *CreditCardHandler) CreatePayment(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	payment, err := h.paymentService.CreatePayment(pmID, req.Amount, req.PaymentDate, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("credit_card_payment_created", "credit_card_payment", payment.ID,
		"Recorded payment of "+strconv.FormatFloat(req.Amount, 'f', 2, 64),
		map[string]any{"payment_method_id": pmID, "payment_date": req.PaymentDate})

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// GetPayments handles listing a card's payments.
// @Summary     List credit card payments
// @Tags        credit-cards
// @Produce     json
// @Param       id path int true "Payment method ID"
// @Success     200 {object} map[string]any "Payments, newest first"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Router      /payment-methods/{id}/payments [get]
func (h *CreditCardHandler) GetPayments(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	payments, err := h.paymentService.GetPayments(pmID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// DeletePayment handles deleting a recorded payment.
// @Summary     Delete a credit card payment
// @Tags        credit-cards
// @Produce     json
// @Param       id        path int true "Payment method ID"
// @Param       paymentId path int true "Payment ID"
// @Success     200 {object} MessageResponse "Payment deleted"
// @Failure     404 {object} ErrorResponse "Payment not found for this payment method"
// @Router      /payment-methods/{id}/payments/{paymentId} [delete]
func (h *CreditCardHandler) DeletePayment(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	paymentID, err := parsePathID(c, "paymentId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.paymentService.DeletePayment(pmID, paymentID); err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("credit_card_payment_deleted", "credit_card_payment", paymentID,
		"Deleted payment", map[string]any{"payment_method_id": pmID})

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}

// UploadStatement handles uploading a statement PDF for a card. Expects a
// multipart form with a "statement" file field plus date fields.
// @Summary     Upload a credit card statement PDF
// @Tags        credit-cards
// @Accept      mpfd
// @Produce     json
// @Param       id             path     int    true  "Payment method ID"
// @Param       statement      formData file   true  "Statement PDF"
// @Param       statement_date formData string true  "Statement date (YYYY-MM-DD)"
// @Success     201 {object} models.CreditCardStatement "Statement stored"
// @Failure     400 {object} ErrorResponse "Not a PDF or invalid fields"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Failure     413 {object} ErrorResponse "File too large"
// @Router      /payment-methods/{id}/statements [post]
func (h *CreditCardHandler) UploadStatement(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	statementDate := c.PostForm("statement_date")
	if !isDateOnly(statementDate) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "statement_date must be in YYYY-MM-DD format"))
		return
	}
	periodStart, periodEnd := c.PostForm("period_start"), c.PostForm("period_end")
	for _, d := range []string{periodStart, periodEnd} {
		if d != "" && !isDateOnly(d) {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "dates must be in YYYY-MM-DD format"))
			return
		}
	}

	data, originalName, err := readUploadedFile(c, "statement")
	if err != nil {
		respondWithError(c, err)
		return
	}

	statement, err := h.statementService.UploadStatement(pmID, statementDate, periodStart, periodEnd, data, originalName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("statement_uploaded", "credit_card_statement", statement.ID,
		"Uploaded statement dated "+statementDate,
		map[string]any{"payment_method_id": pmID, "filename": statement.Filename})

	c.JSON(http.StatusCreated, gin.H{"statement": statement})
}

// GetStatements handles listing a card's uploaded statements.
// @Summary     List credit card statements
// @Tags        credit-cards
// @Produce     json
// @Param       id path int true "Payment method ID"
// @Success     200 {object} map[string]any "Statements, newest first"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Router      /payment-methods/{id}/statements [get]
func (h *CreditCardHandler) GetStatements(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	statements, err := h.statementService.GetStatements(pmID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"statements": statements})
}

// GetStatementFile streams a statement PDF inline.
// @Summary     Download a statement PDF
// @Tags        credit-cards
// @Produce     application/pdf
// @Param       id          path int true "Payment method ID"
// @Param       statementId path int true "Statement ID"
// @Success     200 {file} file "Statement PDF"
// @Failure     404 {object} ErrorResponse "Statement or file not found"
// @Router      /payment-methods/{id}/statements/{statementId}/file [get]
func (h *CreditCardHandler) GetStatementFile(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	statementID, err := parsePathID(c, "statementId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	f, info, statement, err := h.statementService.OpenStatementFile(pmID, statementID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `inline; filename="`+statement.Filename+`"`)
	c.Header("Cache-Control", "private, max-age=300")
	c.DataFromReader(http.StatusOK, info.Size(), "application/pdf", f, nil)
}

// DeleteStatement handles deleting a statement and its stored file.
// @Summary     Delete a credit card statement
// @Tags        credit-cards
// @Produce     json
// @Param       id          path int true "Payment method ID"
// @Param       statementId path int true "Statement ID"
// @Success     200 {object} MessageResponse "Statement deleted"
// @Failure     404 {object} ErrorResponse "Statement not found for this payment method"
// @Router      /payment-methods/{id}/statements/{statementId} [delete]
func (h *CreditCardHandler) DeleteStatement(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	statementID, err := parsePathID(c, "statementId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.statementService.DeleteStatement(pmID, statementID); err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("statement_deleted", "credit_card_statement", statementID,
		"Deleted statement", map[string]any{"payment_method_id": pmID})

	c.JSON(http.StatusOK, gin.H{"message": "Statement deleted successfully"})
}
