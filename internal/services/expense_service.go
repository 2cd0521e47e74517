package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// expenseService handles expense business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense creates a new expense.
func (s *expenseService) CreateExpense(input CreateExpenseInput) (*models.Expense, error) {
	if input.PaymentMethodID != nil {
		var pm models.PaymentMethod
		if err := s.db.First(&pm, *input.PaymentMethodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPaymentMethodNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	expense := &models.Expense{
		Description:     input.Description,
		Amount:          input.Amount,
		Date:            input.Date,
		Category:        input.Category,
		PaymentMethodID: input.PaymentMethodID,
		PersonID:        input.PersonID,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetExpenses lists expenses newest-first with the full table count.
func (s *expenseService) GetExpenses(page pagination.LimitOffset) (*pagination.ListResponse[models.Expense], error) {
	page.Defaults()

	var total int64
	if err := s.db.Model(&models.Expense{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	err := s.db.Order("date DESC, id DESC").
		Scopes(pagination.Window(page)).
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewListResponse(expenses, page.Limit, page.Offset, total)
	return &result, nil
}

// GetExpenseByID returns an expense with its invoices.
func (s *expenseService) GetExpenseByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Preload("Invoices").First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense merges the provided fields onto an existing expense.
func (s *expenseService) UpdateExpense(id uint, input UpdateExpenseInput) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Amount != nil {
		updates["amount"] = *input.Amount
	}
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.PaymentMethodID != nil {
		updates["payment_method_id"] = *input.PaymentMethodID
	}
	if input.PersonID != nil {
		updates["person_id"] = *input.PersonID
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return expense, nil
}

// DeleteExpense removes an expense.
func (s *expenseService) DeleteExpense(id uint) error {
	expense, err := s.GetExpenseByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// personService handles people records.
type personService struct {
	db *gorm.DB
}

// NewPersonService creates a new PersonServicer.
func NewPersonService(db *gorm.DB) PersonServicer {
	return &personService{db: db}
}

// CreatePerson creates a new person.
func (s *personService) CreatePerson(name, relationship string) (*models.Person, error) {
	person := &models.Person{Name: name, Relationship: relationship}
	if err := s.db.Create(person).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return person, nil
}

// GetPeople lists all people.
func (s *personService) GetPeople() ([]models.Person, error) {
	var people []models.Person
	if err := s.db.Order("name").Find(&people).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return people, nil
}

// GetPersonByID returns a person by ID.
func (s *personService) GetPersonByID(id uint) (*models.Person, error) {
	var person models.Person
	if err := s.db.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &person, nil
}

// UpdatePerson merges the provided fields onto an existing person.
func (s *personService) UpdatePerson(id uint, name, relationship *string) (*models.Person, error) {
	person, err := s.GetPersonByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		updates["name"] = *name
	}
	if relationship != nil {
		updates["relationship"] = *relationship
	}
	if len(updates) > 0 {
		if err := s.db.Model(person).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return person, nil
}

// DeletePerson removes a person.
func (s *personService) DeletePerson(id uint) error {
	person, err := s.GetPersonByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(person).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
