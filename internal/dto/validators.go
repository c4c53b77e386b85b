package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// RegisterCustomValidators attaches the request-level validation rules to
// gin's binding validator. Called once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("taskpriority", func(fl validator.FieldLevel) bool {
		return domain.ValidPriority(domain.ItemPriority(fl.Field().String()))
	})
}
