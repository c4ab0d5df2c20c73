package handlers

import (
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("txtype", validateTransactionType); err != nil {
		return fmt.Errorf("registering txtype validator: %w", err)
	}
	if err := v.RegisterValidation("isodate", validateISODate); err != nil {
		return fmt.Errorf("registering isodate validator: %w", err)
	}
	return nil
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return domain.TransactionType(fl.Field().String()).IsValid()
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.DateLayout, fl.Field().String())
	return err == nil
}
