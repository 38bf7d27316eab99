package handlers

import (
	"sync"

	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("tenantcode", func(fl validator.FieldLevel) bool {
				return domain.TenantCode(fl.Field().String()).IsValid()
			})
		}
	})
}
