package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
	"github.com/bibliodigital/biblioteca-server/internal/objectstore"
	"github.com/bibliodigital/biblioteca-server/internal/store"
)

type testEnv struct {
	store    *store.Store
	objects  *objectstore.Storage
	services *Services
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	objects, err := objectstore.New(t.TempDir(), "biblioteca", "s3.amazonaws.com")
	require.NoError(t, err)

	return &testEnv{
		store:    s,
		objects:  objects,
		services: New(s, objects, nil),
	}
}

// seedCatalog creates one author, one reader, one librarian, and one
// available book, all with ID 1. Returns the book.
func (e *testEnv) seedCatalog(t *testing.T) *domain.Book {
	t.Helper()
	ctx := context.Background()

	_, err := e.services.Authors.Create(ctx, &domain.Author{Nombre: "Julio", Apellido: "Cortázar"})
	require.NoError(t, err)
	_, err = e.services.Readers.Create(ctx, &domain.Reader{Nombre: "Ana", Correo: "ana@example.com"})
	require.NoError(t, err)
	_, err = e.services.Librarians.Create(ctx, &domain.Librarian{Nombre: "Luis", Correo: "luis@example.com"})
	require.NoError(t, err)

	book, err := e.services.Books.Create(ctx, CreateBookParams{
		Titulo:      "Rayuela",
		AutorID:     1,
		Descripcion: "Novela",
		Inventario:  true,
		Cover:       Upload{Filename: "rayuela.jpg", Data: []byte("portada")},
	})
	require.NoError(t, err)

	return book
}
