package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// ExpenseHandler handles expenses and people.
type ExpenseHandler struct {
	expenseService     services.ExpenseServicer
	personService      services.PersonServicer
	activityLogService services.ActivityLogServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, personService services.PersonServicer, activityLogService services.ActivityLogServicer) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService:     expenseService,
		personService:      personService,
		activityLogService: activityLogService,
	}
}

// CreateExpenseRequest represents the payload for creating an expense.
type CreateExpenseRequest struct {
	Description     string   `json:"description" binding:"required,min=1,max=255"`
	Amount          *float64 `json:"amount" binding:"required,gt=0"`
	Date            string   `json:"date" binding:"required,dateonly"`
	Category        string   `json:"category"`
	PaymentMethodID *uint    `json:"payment_method_id"`
	PersonID        *uint    `json:"person_id"`
}

// UpdateExpenseRequest represents the payload for updating an expense.
type UpdateExpenseRequest struct {
	Description     *string  `json:"description" binding:"omitempty,min=1,max=255"`
	Amount          *float64 `json:"amount" binding:"omitempty,gt=0"`
	Date            *string  `json:"date" binding:"omitempty,dateonly"`
	Category        *string  `json:"category"`
	PaymentMethodID *uint    `json:"payment_method_id"`
	PersonID        *uint    `json:"person_id"`
}

// CreatePersonRequest represents the payload for creating a person.
type CreatePersonRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Relationship string `json:"relationship"`
}

// UpdatePersonRequest represents the payload for updating a person.
type UpdatePersonRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Relationship *string `json:"relationship"`
}

// CreateExpense handles creating an expense.
// @Summary     Create an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Payment method not found"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(services.CreateExpenseInput{
		Description:     req.Description,
		Amount:          *req.Amount,
		Date:            req.Date,
		Category:        req.Category,
		PaymentMethodID: req.PaymentMethodID,
		PersonID:        req.PersonID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("expense_created", "expense", expense.ID,
		"Created expense "+expense.Description,
		map[string]any{"amount": expense.Amount, "date": expense.Date})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetExpenses handles listing expenses, newest first.
// @Summary     List expenses
// @Tags        expenses
// @Produce     json
// @Param       limit  query int false "Window size (default 50)"
// @Param       offset query int false "Window offset (default 0)"
// @Success     200 {object} pagination.ListResponse[models.Expense] "Expense window"
// @Failure     400 {object} ErrorResponse "Invalid limit or offset"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	var page pagination.LimitOffset
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	result, err := h.expenseService.GetExpenses(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExpense handles retrieving one expense with its invoices.
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} models.Expense "Expense"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles a partial expense update.
// @Summary     Update expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id      path int true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to update"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	expense, err := h.expenseService.UpdateExpense(id, services.UpdateExpenseInput{
		Description:     req.Description,
		Amount:          req.Amount,
		Date:            req.Date,
		Category:        req.Category,
		PaymentMethodID: req.PaymentMethodID,
		PersonID:        req.PersonID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("expense_updated", "expense", id,
		"Updated expense "+expense.Description, nil)

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles deleting an expense.
// @Summary     Delete expense
// @Tags        expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("expense_deleted", "expense", id, "Deleted expense", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// CreatePerson handles creating a person.
// @Summary     Create a person
// @Tags        people
// @Accept      json
// @Produce     json
// @Param       request body CreatePersonRequest true "Person details"
// @Success     201 {object} models.Person "Person created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /people [post]
func (h *ExpenseHandler) CreatePerson(c *gin.Context) {
	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	person, err := h.personService.CreatePerson(req.Name, req.Relationship)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("person_created", "person", person.ID,
		"Created person "+person.Name, nil)

	c.JSON(http.StatusCreated, gin.H{"person": person})
}

// GetPeople handles listing people.
// @Summary     List people
// @Tags        people
// @Produce     json
// @Success     200 {object} map[string]any "People"
// @Router      /people [get]
func (h *ExpenseHandler) GetPeople(c *gin.Context) {
	people, err := h.personService.GetPeople()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"people": people})
}

// GetPerson handles retrieving one person.
// @Summary     Get person by ID
// @Tags        people
// @Produce     json
// @Param       id path int true "Person ID"
// @Success     200 {object} models.Person "Person"
// @Failure     404 {object} ErrorResponse "Person not found"
// @Router      /people/{id} [get]
func (h *ExpenseHandler) GetPerson(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	person, err := h.personService.GetPersonByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"person": person})
}

// UpdatePerson handles a partial person update.
// @Summary     Update person
// @Tags        people
// @Accept      json
// @Produce     json
// @Param       id      path int true "Person ID"
// @Param       request body UpdatePersonRequest true "Fields to update"
// @Success     200 {object} models.Person "Updated person"
// @Failure     404 {object} ErrorResponse "Person not found"
// @Router      /people/{id} [put]
func (h *ExpenseHandler) UpdatePerson(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	person, err := h.personService.UpdatePerson(id, req.Name, req.Relationship)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("person_updated", "person", id, "Updated person "+person.Name, nil)

	c.JSON(http.StatusOK, gin.H{"person": person})
}

// DeletePerson handles deleting a person.
// @Summary     Delete person
// @Tags        people
// @Produce     json
// @Param       id path int true "Person ID"
// @Success     200 {object} MessageResponse "Person deleted"
// @Failure     404 {object} ErrorResponse "Person not found"
// @Router      /people/{id} [delete]
func (h *ExpenseHandler) DeletePerson(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.personService.DeletePerson(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.activityLogService.Log("person_deleted", "person", id, "Deleted person", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Person deleted successfully"})
}
