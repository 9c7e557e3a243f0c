package dto

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/tu-usuario/factory-pro/internal/domain"
)

// phoneRegex: 9 a 15 dígitos con prefijo +1 opcional, igual que el esquema
// de la API pública.
var phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Teléfono con formato propio; el tag e164 de la librería es más estricto
	// de lo que acepta la API.
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic("registrar validador phone: " + err.Error())
	}
	return v
}

// Validate valida un DTO contra sus tags. Los requests de update usan
// punteros con omitempty, así que solo los campos presentes se validan
// (modo parcial); un valor presente pero inválido sigue fallando.
func Validate(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
