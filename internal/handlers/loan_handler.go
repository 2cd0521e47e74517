package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// LoanHandler handles loans and their month-indexed balance history.
type LoanHandler struct {
	loanService        services.LoanServicer
	balanceService     services.LoanBalanceServicer
	activityLogService services.ActivityLogServicer
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(loanService services.LoanServicer, balanceService services.LoanBalanceServicer, activityLogService services.ActivityLogServicer) *LoanHandler {
	return &LoanHandler{
		loanService:        loanService,
		balanceService:     balanceService,
		activityLogService: activityLogService,
	}
}

// CreateLoanRequest represents the payload for creating a loan.
type CreateLoanRequest struct {
	Name              string          `json:"name" binding:"required,min=1,max=100"`
	InitialBalance    float64         `json:"initial_balance" binding:"required,gt=0"`
	StartDate         string          `json:"start_date" binding:"required,dateonly"`
	LoanType          models.LoanType `json:"loan_type" binding:"required,loan_type"`
	FixedInterestRate *float64        `json:"fixed_interest_rate" binding:"omitempty,gte=0"`
}

// UpdateLoanRequest represents the payload for updating a loan.
type UpdateLoanRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=1,max=100"`
	InitialBalance    *float64         `json:"initial_balance" binding:"omitempty,gt=0"`
	StartDate         *string          `json:"start_date" binding:"omitempty,dateonly"`
	LoanType          *models.LoanType `json:"loan_type" binding:"omitempty,loan_type"`
	FixedInterestRate *float64         `json:"fixed_interest_rate" binding:"omitempty,gte=0"`
}

// CreateLoanBalanceRequest represents the payload for recording a monthly
// balance snapshot.
type CreateLoanBalanceRequest struct {
	LoanID           uint     `json:"loan_id" binding:"required"`
	Year             int      `json:"year" binding:"required,min=1900,max=2200"`
	Month            int      `json:"month" binding:"required,min=1,max=12"`
	RemainingBalance *float64 `json:"remaining_balance" binding:"required,gte=0"`
	InterestRate     *float64 `json:"interest_rate" binding:"omitempty,gte=0"`
}

// UpdateLoanBalanceRequest represents the payload for updating a snapshot.
type UpdateLoanBalanceRequest struct {
	RemainingBalance *float64 `json:"remaining_balance" binding:"omitempty,gte=0"`
	InterestRate     *float64 `json:"interest_rate" binding:"omitempty,gte=0"`
}

// CreateLoan handles creating a loan.
// @Summary     Create a loan
// @Tags        loans
// @Accept      json
// @Produce     json
// @Param       request body CreateLoanRequest true "Loan details"
// @Success     201 {object} models.Loan "Loan created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /loans [post]
func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	loan, err := h.loanService.CreateLoan(services.CreateLoanInput{
		Name:              req.Name,
		InitialBalance:    req.InitialBalance,
		StartDate:         req.StartDate,
		LoanType:          req.LoanType,
		FixedInterestRate: req.FixedInterestRate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("loan_created", "loan", loan.ID,
		"Created loan "+loan.Name, map[string]any{"loan_type": loan.LoanType})

	c.JSON(http.StatusCreated, gin.H{"loan": loan})
}

// GetLoans handles listing all loans.
// @Summary     List loans
// @Tags        loans
// @Produce     json
// @Success     200 {object} map[string]any "Loans"
// @Router      /loans [get]
func (h *LoanHandler) GetLoans(c *gin.Context) {
	loans, err := h.loanService.GetLoans()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loans": loans})
}

// GetLoan handles retrieving one loan.
// @Summary     Get loan by ID
// @Tags        loans
// @Produce     json
// @Param       id path int true "Loan ID"
// @Success     200 {object} models.Loan "Loan"
// @Failure     404 {object} ErrorResponse "Loan not found"
// @Router      /loans/{id} [get]
func (h *LoanHandler) GetLoan(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	loan, err := h.loanService.GetLoanByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loan": loan})
}

// UpdateLoan handles a partial loan update.
// @Summary     Update loan
// @Tags        loans
// @Accept      json
// @Produce     json
// @Param       id      path int true "Loan ID"
// @Param       request body UpdateLoanRequest true "Fields to update"
// @Success     200 {object} models.Loan "Updated loan"
// @Failure     404 {object} ErrorResponse "Loan not found"
// @Router      /loans/{id} [put]
func (h *LoanHandler) UpdateLoan(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	loan, err := h.loanService.UpdateLoan(id, services.UpdateLoanInput{
		Name:              req.Name,
		InitialBalance:    req.InitialBalance,
		StartDate:         req.StartDate,
		LoanType:          req.LoanType,
		FixedInterestRate: req.FixedInterestRate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("loan_updated", "loan", id, "Updated loan "+loan.Name, nil)

	c.JSON(http.StatusOK, gin.H{"loan": loan})
}

// DeleteLoan handles deleting a loan and its balance history.
// @Summary     Delete loan
// @Tags        loans
// @Produce     json
// @Param       id path int true "Loan ID"
// @Success     200 {object} MessageResponse "Loan deleted"
// @Failure     404 {object} ErrorResponse "Loan not found"
// @Router      /loans/{id} [delete]
func (h *LoanHandler) DeleteLoan(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.loanService.DeleteLoan(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("loan_deleted", "loan", id, "Deleted loan", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Loan deleted successfully"})
}

// CreateOrUpdateBalance handles recording a balance snapshot for a loan
// month. Creating a snapshot for a month that already has one overwrites
// it; the response code says which happened.
// @Summary     Record a monthly loan balance
// @Tags        loan-balances
// @Accept      json
// @Produce     json
// @Param       request body CreateLoanBalanceRequest true "Balance snapshot"
// @Success     200 {object} models.LoanBalance "Existing snapshot updated"
// @Success     201 {object} models.LoanBalance "Snapshot created"
// @Failure     400 {object} ErrorResponse "Interest rate required"
// @Failure     404 {object} ErrorResponse "Loan not found"
// @Router      /loan-balances [post]
func (h *LoanHandler) CreateOrUpdateBalance(c *gin.Context) {
	var req CreateLoanBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	balance, created, err := h.balanceService.CreateOrUpdateBalance(req.LoanID, req.Year, req.Month, *req.RemainingBalance, req.InterestRate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	eventType := "loan_balance_updated"
	status := http.StatusOK
	if created {
		eventType = "loan_balance_created"
		status = http.StatusCreated
	}
	h.activityLogService.Log(eventType, "loan_balance", balance.ID,
		"Recorded balance for "+strconv.Itoa(req.Year)+"-"+strconv.Itoa(req.Month),
		map[string]any{"loan_id": req.LoanID})

	c.JSON(status, gin.H{"balance": balance})
}

// GetBalanceHistory handles listing a loan's balance history.
// @Summary     List loan balance history
// @Tags        loan-balances
// @Produce     json
// @Param       id path int true "Loan ID"
// @Success     200 {object} map[string]any "Balances, newest period first"
// @Failure     404 {object} ErrorResponse "Loan not found"
// @Router      /loans/{id}/balances [get]
func (h *LoanHandler) GetBalanceHistory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	balances, err := h.balanceService.GetBalanceHistory(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balances": balances})
}

// GetBalanceForMonth handles retrieving one month's snapshot.
// @Summary     Get loan balance for a month
// @Tags        loan-balances
// @Produce     json
// @Param       id    path int true "Loan ID"
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {object} models.LoanBalance "Balance snapshot"
// @Failure     404 {object} ErrorResponse "No balance recorded for that month"
// @Router      /loans/{id}/balances/{year}/{month} [get]
func (h *LoanHandler) GetBalanceForMonth(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "Invalid year"))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "Invalid month"))
		return
	}

	balance, err := h.balanceService.GetBalanceForMonth(id, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// UpdateBalance handles a partial snapshot update.
// @Summary     Update a loan balance snapshot
// @Tags        loan-balances
// @Accept      json
// @Produce     json
// @Param       id      path int true "Balance ID"
// @Param       request body UpdateLoanBalanceRequest true "Fields to update"
// @Success     200 {object} models.LoanBalance "Updated snapshot"
// @Failure     404 {object} ErrorResponse "Balance not found"
// @Router      /loan-balances/{id} [put]
func (h *LoanHandler) UpdateBalance(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateLoanBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	balance, err := h.balanceService.UpdateBalance(id, req.RemainingBalance, req.InterestRate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("loan_balance_updated", "loan_balance", id,
		"Updated balance snapshot", map[string]any{"loan_id": balance.LoanID})

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// DeleteBalance handles deleting a snapshot.
// @Summary     Delete a loan balance snapshot
// @Tags        loan-balances
// @Produce     json
// @Param       id path int true "Balance ID"
// @Success     200 {object} MessageResponse "Balance deleted"
// @Failure     404 {object} ErrorResponse "Balance not found"
// @Router      /loan-balances/{id} [delete]
func (h *LoanHandler) DeleteBalance(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.balanceService.DeleteBalance(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("loan_balance_deleted", "loan_balance", id,
		"Deleted balance snapshot", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Loan balance deleted successfully"})
}
