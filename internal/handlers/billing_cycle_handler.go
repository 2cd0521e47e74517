package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

// BillingCycleHandler handles billing-cycle requests for credit cards.
type BillingCycleHandler struct {
	billingCycleService services.BillingCycleServicer
	activityLogService  services.ActivityLogServicer
	store               *storage.Store
}

// NewBillingCycleHandler creates a new BillingCycleHandler.
func NewBillingCycleHandler(billingCycleService services.BillingCycleServicer, activityLogService services.ActivityLogServicer, store *storage.Store) *BillingCycleHandler {
	return &BillingCycleHandler{
		billingCycleService: billingCycleService,
		activityLogService:  activityLogService,
		store:               store,
	}
}

// CreateBillingCycleRequest represents the payload for entering a cycle.
// It binds from JSON or from multipart form fields.
type CreateBillingCycleRequest struct {
	ActualStatementBalance *float64 `json:"actual_statement_balance" form:"actual_statement_balance" binding:"required"`
	MinimumPayment         *float64 `json:"minimum_payment" form:"minimum_payment"`
	Notes                  string   `json:"notes" form:"notes"`
}

// UpdateBillingCycleRequest represents the payload for updating a cycle.
// Absent fields preserve the stored values.
type UpdateBillingCycleRequest struct {
	ActualStatementBalance *float64 `json:"actual_statement_balance"`
	MinimumPayment         *float64 `json:"minimum_payment"`
	Notes                  *string  `json:"notes"`
}

// GetCurrentCycle handles the current-cycle status view.
// @Summary     Get current billing cycle status
// @Tags        billing-cycles
// @Produce     json
// @Param       id path int true "Payment method ID"
// @Success     200 {object} services.CycleStatus "Current cycle status"
// @Failure     400 {object} ErrorResponse "Not a credit card or no billing cycle day"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Router      /payment-methods/{id}/billing-cycles/current [get]
func (h *BillingCycleHandler) GetCurrentCycle(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.billingCycleService.GetCurrentCycleStatus(pmID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// CreateBillingCycle handles entering the current cycle's statement
// balance, optionally with an attached statement PDF (multipart field
// "statement_pdf").
// @Summary     Create a billing cycle entry
// @Tags        billing-cycles
// @Accept      json
// @Accept      mpfd
// @Produce     json
// @Param       id path int true "Payment method ID"
// @Success     201 {object} map[string]any "Cycle and discrepancy"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Failure     409 {object} ErrorResponse "Cycle already exists for this period"
// @Router      /payment-methods/{id}/billing-cycles [post]
func (h *BillingCycleHandler) CreateBillingCycle(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBillingCycleRequest
	var pdfPath string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
			return
		}
		if c.Request.MultipartForm != nil && len(c.Request.MultipartForm.File["statement_pdf"]) > 0 {
			data, _, err := readUploadedFile(c, "statement_pdf")
			if err != nil {
				respondWithError(c, err)
				return
			}
			saved, err := h.store.Save("statements", data, "statement.pdf")
			if err != nil {
				respondWithError(c, err)
				return
			}
			pdfPath = saved.Path
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
			return
		}
	}

	cycle, discrepancy, err := h.billingCycleService.CreateBillingCycle(pmID, services.CreateBillingCycleInput{
		ActualStatementBalance: *req.ActualStatementBalance,
		MinimumPayment:         req.MinimumPayment,
		Notes:                  req.Notes,
		StatementPDFPath:       pdfPath,
	})
	if err != nil {
		// The cycle row was never written; don't orphan the uploaded PDF.
		if pdfPath != "" {
			if rmErr := h.store.Remove(pdfPath); rmErr != nil {
				logger.Get().Warnw("failed to clean up statement PDF", "path", pdfPath, "error", rmErr)
			}
		}
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("billing_cycle_created", "billing_cycle", cycle.ID,
		"Entered statement balance for cycle ending "+cycle.CycleEndDate,
		map[string]any{"payment_method_id": pmID, "actual_statement_balance": *req.ActualStatementBalance})

	c.JSON(http.StatusCreated, gin.H{"cycle": cycle, "discrepancy": discrepancy})
}

// UpdateBillingCycle handles a partial cycle update.
// @Summary     Update a billing cycle
// @Tags        billing-cycles
// @Accept      json
// @Produce     json
// @Param       id      path int true "Payment method ID"
// @Param       cycleId path int true "Billing cycle ID"
// @Success     200 {object} map[string]any "Updated cycle and discrepancy"
// @Failure     404 {object} ErrorResponse "Cycle not found for this payment method"
// @Router      /payment-methods/{id}/billing-cycles/{cycleId} [put]
func (h *BillingCycleHandler) UpdateBillingCycle(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	cycleID, err := parsePathID(c, "cycleId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBillingCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	cycle, discrepancy, err := h.billingCycleService.UpdateBillingCycle(pmID, cycleID, services.UpdateBillingCycleInput{
		ActualStatementBalance: req.ActualStatementBalance,
		MinimumPayment:         req.MinimumPayment,
		Notes:                  req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("billing_cycle_updated", "billing_cycle", cycleID,
		"Updated billing cycle ending "+cycle.CycleEndDate,
		map[string]any{"payment_method_id": pmID})

	c.JSON(http.StatusOK, gin.H{"cycle": cycle, "discrepancy": discrepancy})
}

// DeleteBillingCycle handles deleting a cycle. The DB delete and the PDF
// file delete are two separate steps; a failed file delete only logs.
// @Summary     Delete a billing cycle
// @Tags        billing-cycles
// @Produce     json
// @Param       id      path int true "Payment method ID"
// @Param       cycleId path int true "Billing cycle ID"
// @Success     200 {object} MessageResponse "Cycle deleted"
// @Failure     404 {object} ErrorResponse "Cycle not found for this payment method"
// @Router      /payment-methods/{id}/billing-cycles/{cycleId} [delete]
func (h *BillingCycleHandler) DeleteBillingCycle(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	cycleID, err := parsePathID(c, "cycleId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	cycle, err := h.billingCycleService.DeleteBillingCycle(pmID, cycleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if cycle.StatementPDFPath != "" {
		if err := h.store.Remove(cycle.StatementPDFPath); err != nil {
			// Orphaned file; logged, not retried.
			logger.Get().Warnw("failed to remove statement PDF after cycle delete",
				"path", cycle.StatementPDFPath, "error", err)
		}
	}

	h.activityLogService.Log("billing_cycle_deleted", "billing_cycle", cycleID,
		"Deleted billing cycle ending "+cycle.CycleEndDate,
		map[string]any{"payment_method_id": pmID})

	c.JSON(http.StatusOK, gin.H{"message": "Billing cycle deleted successfully"})
}

// GetUnifiedBillingCycles handles the unified cycle listing with lazy
// placeholder generation.
// @Summary     List unified billing cycles
// @Tags        billing-cycles
// @Produce     json
// @Param       id                    path  int    true  "Payment method ID"
// @Param       limit                 query int    false "Cycles to return (default 12, max 60)"
// @Param       include_auto_generate query bool   false "Generate placeholder rows (default true)"
// @Success     200 {object} services.UnifiedCyclesResult "Cycles with effective balances"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Router      /payment-methods/{id}/billing-cycles/unified [get]
func (h *BillingCycleHandler) GetUnifiedBillingCycles(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	includeAutoGenerate := true
	if v := c.Query("include_auto_generate"); v != "" {
		switch v {
		case "true":
		case "false":
			includeAutoGenerate = false
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "include_auto_generate must be 'true' or 'false'"))
			return
		}
	}

	result, err := h.billingCycleService.GetUnifiedBillingCycles(pmID, limit, includeAutoGenerate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCycleHistory handles the cycle history listing.
// @Summary     List billing cycle history
// @Tags        billing-cycles
// @Produce     json
// @Param       id        path  int    true  "Payment method ID"
// @Param       limit     query int    false "Cycles to return (default 12)"
// @Param       startDate query string false "Earliest cycle end date (YYYY-MM-DD)"
// @Param       endDate   query string false "Latest cycle end date (YYYY-MM-DD)"
// @Success     200 {object} map[string]any "Cycle history"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Router      /payment-methods/{id}/billing-cycles/history [get]
func (h *BillingCycleHandler) GetCycleHistory(c *gin.Context) {
	pmID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	for _, d := range []string{startDate, endDate} {
		if d != "" && !isDateOnly(d) {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "dates must be in YYYY-MM-DD format"))
			return
		}
	}

	cycles, err := h.billingCycleService.GetCycleHistory(pmID, limit, startDate, endDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cycles": cycles})
}
