package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/domain"
)

func validCreateEmployee() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:     "Laura Gómez",
		Position: "Operaria de planta",
		Email:    "laura@fabrica.co",
		Phone:    "+13001234567",
	}
}

func TestValidate_EmployeeValido(t *testing.T) {
	assert.NoError(t, dto.Validate(validCreateEmployee()))
}

func TestValidate_EmailInvalido(t *testing.T) {
	in := validCreateEmployee()
	in.Email = "no-es-un-email"
	assert.ErrorIs(t, dto.Validate(in), domain.ErrInvalidInput)
}

func TestValidate_Telefono(t *testing.T) {
	for _, tc := range []struct {
		phone string
		ok    bool
	}{
		{"+13001234567", true},
		{"3001234567", true},
		{"300123456789012", true},  // 15 dígitos, tope del formato
		{"12345678", false},        // menos de 9 dígitos
		{"++3001234567", false},    // doble prefijo
		{"300-123-4567", false},    // separadores no permitidos
		{"3001234567890123", false}, // 16 dígitos
	} {
		in := validCreateEmployee()
		in.Phone = tc.phone
		err := dto.Validate(in)
		if tc.ok {
			assert.NoError(t, err, "teléfono %q debe aceptarse", tc.phone)
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "teléfono %q debe rechazarse", tc.phone)
		}
	}
}

func TestValidate_RolFueraDelConjunto(t *testing.T) {
	in := dto.RegisterUserRequest{Username: "nuevo", Password: "secreto1", Role: "gerente"}
	assert.ErrorIs(t, dto.Validate(in), domain.ErrInvalidInput,
		"solo user, admin y super_admin son roles válidos")
}

func TestValidate_UpdateParcialSoloCamposPresentes(t *testing.T) {
	// Sin campos: válido (no hay nada que validar en modo parcial).
	assert.NoError(t, dto.Validate(dto.UpdateEmployeeRequest{}))

	// Campo presente pero inválido: falla aunque sea parcial.
	bad := "x"
	assert.ErrorIs(t, dto.Validate(dto.UpdateEmployeeRequest{Phone: &bad}), domain.ErrInvalidInput)
}
