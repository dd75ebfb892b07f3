package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
	domainerrors "github.com/bibliodigital/biblioteca-server/internal/errors"
)

func TestBookCreateUploadsCover(t *testing.T) {
	env := newTestEnv(t)
	book := env.seedCatalog(t)

	assert.Equal(t, int64(1), book.ID)
	assert.True(t, strings.HasPrefix(book.ImagenPortada, "https://biblioteca.s3.amazonaws.com/portadas/"))
	assert.True(t, strings.HasSuffix(book.ImagenPortada, "_rayuela.jpg"))
	assert.True(t, book.Inventario)
}

func TestBookCreateUnknownAuthorLeavesNoOrphanUpload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.Books.Create(ctx, CreateBookParams{
		Titulo:  "Sin autor",
		AutorID: 99,
		Cover:   Upload{Filename: "portada.jpg", Data: []byte("x")},
	})

	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeNotFound, derr.Code)
	assert.Equal(t, "El autor no existe", derr.Message)

	books, err := env.services.Books.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestBookUpdateFieldsOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	book := env.seedCatalog(t)

	descripcion := "Novela experimental"
	updated, err := env.services.Books.Update(ctx, book.ID, domain.BookPatch{Descripcion: &descripcion}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Novela experimental", updated.Descripcion)
	assert.Equal(t, book.ImagenPortada, updated.ImagenPortada)
}

func TestBookUpdateReplacesCover(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	book := env.seedCatalog(t)

	updated, err := env.services.Books.Update(ctx, book.ID, domain.BookPatch{}, &Upload{
		Filename: "nueva.jpg",
		Data:     []byte("nueva portada"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, book.ImagenPortada, updated.ImagenPortada)
	assert.True(t, strings.HasSuffix(updated.ImagenPortada, "_nueva.jpg"))
}

func TestBookUpdateRejectsEmptyRequest(t *testing.T) {
	env := newTestEnv(t)
	book := env.seedCatalog(t)

	_, err := env.services.Books.Update(context.Background(), book.ID, domain.BookPatch{}, nil)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
	assert.Equal(t, "No hay datos para actualizar", derr.Message)
}

func TestBookDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	book := env.seedCatalog(t)

	msg, err := env.services.Books.Delete(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Libro eliminado exitosamente", msg)

	_, err = env.services.Books.Get(ctx, book.ID)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "El libro no se encontró", derr.Message)

	_, err = env.services.Books.Delete(ctx, book.ID)
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Libro no encontrado", derr.Message)
}
