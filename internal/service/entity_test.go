package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
	domainerrors "github.com/bibliodigital/biblioteca-server/internal/errors"
)

func TestAuthorCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	authors := env.services.Authors

	created, err := authors.Create(ctx, &domain.Author{
		Nombre:    "Gabriel",
		Apellido:  "García Márquez",
		Biografia: "Novelista colombiano",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := authors.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "García Márquez", got.Apellido)

	nombre := "Gabo"
	updated, err := authors.Update(ctx, created.ID, domain.AuthorPatch{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Gabo", updated.Nombre)
	assert.Equal(t, "García Márquez", updated.Apellido)

	msg, err := authors.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "El autor se eliminó correctamente", msg)

	_, err = authors.Get(ctx, created.ID)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeNotFound, derr.Code)
	assert.Equal(t, "El autor no se encontró", derr.Message)
}

func TestEntityUpdateRejectsEmptyPatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.services.Readers.Create(ctx, &domain.Reader{Nombre: "Ana"})
	require.NoError(t, err)

	_, err = env.services.Readers.Update(ctx, created.ID, domain.ReaderPatch{})
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
	assert.Equal(t, "No hay datos para actualizar", derr.Message)
}

func TestEntityNotFoundMessages(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nombre := "x"

	var derr *domainerrors.Error

	_, err := env.services.Readers.Get(ctx, 42)
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "El lector no se encontró", derr.Message)

	_, err = env.services.Readers.Update(ctx, 42, domain.ReaderPatch{Nombre: &nombre})
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Lector no encontrado", derr.Message)

	_, err = env.services.Librarians.Delete(ctx, 42)
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Bibliotecario no encontrado", derr.Message)
}

func TestEntityListReturnsEmptySlice(t *testing.T) {
	env := newTestEnv(t)

	librarians, err := env.services.Librarians.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, librarians)
	assert.Empty(t, librarians)
}
