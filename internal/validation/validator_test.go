package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/bibliodigital/biblioteca-server/internal/errors"
)

type bookForm struct {
	Titulo  string `json:"titulo" validate:"required"`
	AutorID int64  `json:"autor_id" validate:"required,gt=0"`
	Correo  string `json:"correo,omitempty" validate:"omitempty,email"`
}

func TestValidatePasses(t *testing.T) {
	v := New()

	err := v.Validate(bookForm{Titulo: "Rayuela", AutorID: 1})
	assert.NoError(t, err)
}

func TestValidateReturnsDomainErrorWithJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(bookForm{Correo: "no-es-correo"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "titulo")
	assert.Contains(t, details, "autor_id")
	assert.Contains(t, details, "correo")
	assert.Equal(t, "is required", details["titulo"])
	assert.Equal(t, "must be a valid email address", details["correo"])
}
