package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/factory-pro/internal/application/dto"
	"github.com/tu-usuario/factory-pro/internal/application/usecase"
	"github.com/tu-usuario/factory-pro/internal/domain"
)

func validCreateCustomer() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:  "Distribuidora Norte",
		Email: "ventas@norte.co",
		Phone: "+13005551234",
	}
}

func TestCustomerCreate_DuplicadoPorEmail(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	_, err := uc.Create(validCreateCustomer())
	require.NoError(t, err)

	dup := validCreateCustomer()
	dup.Phone = "+13005559999"
	_, err = uc.Create(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "email repetido debe rechazarse")
}

func TestCustomerCreate_DuplicadoPorTelefono(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	_, err := uc.Create(validCreateCustomer())
	require.NoError(t, err)

	dup := validCreateCustomer()
	dup.Email = "otro@norte.co"
	_, err = uc.Create(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "teléfono repetido debe rechazarse")
}

func TestCustomerUpdate_PuedeConservarSuPropioEmail(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	created, err := uc.Create(validCreateCustomer())
	require.NoError(t, err)

	// Reenviar el mismo email del propio registro no es un duplicado.
	sameEmail := created.Email
	newName := "Distribuidora Norte SAS"
	updated, err := uc.Update(created.ID, dto.UpdateCustomerRequest{Name: &newName, Email: &sameEmail})
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Norte SAS", updated.Name)
}

func TestCustomerUpdate_EmailDeOtroClienteFalla(t *testing.T) {
	repo := newFakeCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	_, err := uc.Create(validCreateCustomer())
	require.NoError(t, err)

	second := validCreateCustomer()
	second.Email = "otro@norte.co"
	second.Phone = "+13005559999"
	b, err := uc.Create(second)
	require.NoError(t, err)

	taken := "ventas@norte.co"
	_, err = uc.Update(b.ID, dto.UpdateCustomerRequest{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerUpdate_NoExisteRetornaNotFound(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())

	name := "Nadie"
	_, err := uc.Update(42, dto.UpdateCustomerRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerList_MetaOpcional(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newFakeCustomerRepo())
	for i, email := range []string{"a@x.co", "b@x.co", "c@x.co"} {
		in := validCreateCustomer()
		in.Email = email
		in.Phone = "+1300555000" + string(rune('0'+i))
		_, err := uc.Create(in)
		require.NoError(t, err)
	}

	withMeta, err := uc.List(dto.PageRequest{Page: 1, PerPage: 2, IncludeMeta: true})
	require.NoError(t, err)
	require.NotNil(t, withMeta.ListMeta, "include_meta=true debe traer totales")
	assert.Equal(t, 3, withMeta.Total)
	assert.Equal(t, 2, withMeta.Pages)
	assert.Len(t, withMeta.Customers, 2)

	withoutMeta, err := uc.List(dto.PageRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Nil(t, withoutMeta.ListMeta, "sin include_meta no se consultan totales")
}
