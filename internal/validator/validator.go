// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("payment_method_type", validatePaymentMethodType)
		_ = v.RegisterValidation("loan_type", validateLoanType)
		_ = v.RegisterValidation("dateonly", validateDateOnly)
	}
}

func validatePaymentMethodType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cash", "cheque", "debit", "credit_card":
		return true
	}
	return false
}

func validateLoanType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "loan", "line_of_credit", "mortgage":
		return true
	}
	return false
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
