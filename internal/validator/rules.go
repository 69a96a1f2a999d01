package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"autobuy_backend/internal/models"
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-role': value must parse as one of the four account roles.
	mustRegister("is-role", validateRole)
}

func validateRole(fl validator.FieldLevel) bool {
	_, err := models.ParseRole(fl.Field().String())
	return err == nil
}
