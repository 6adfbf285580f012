package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/erp/docgen/internal/domain/document"
)

// RegisterValidators installs the enum validation tags used by the
// request DTOs. Call once during startup, before routes are served.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("dockind", func(fl validator.FieldLevel) bool {
		return document.DocKind(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("doclocale", func(fl validator.FieldLevel) bool {
		return document.Locale(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}

	return v.RegisterValidation("paperprofile", func(fl validator.FieldLevel) bool {
		return document.PaperProfile(fl.Field().String()).IsValid()
	})
}
