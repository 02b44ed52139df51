// Package validator provides custom validation functions for Gin's binding engine
// and for catalog records decoded outside of a request.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cashflow/internal/game"
)

var saveNameRegex = regexp.MustCompile(`^[\p{L}\p{N}_\- ]{1,64}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustom(v)
	}
}

// New returns a standalone validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	registerCustom(v)
	return v
}

func registerCustom(v *validator.Validate) {
	_ = v.RegisterValidation("offer_kind", validateOfferKind)
	_ = v.RegisterValidation("save_name", validateSaveName)
}

func validateOfferKind(fl validator.FieldLevel) bool {
	return game.OfferKind(fl.Field().String()).WellFormed()
}

func validateSaveName(fl validator.FieldLevel) bool {
	return saveNameRegex.MatchString(fl.Field().String())
}
