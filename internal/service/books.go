package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
	domainerrors "github.com/bibliodigital/biblioteca-server/internal/errors"
	"github.com/bibliodigital/biblioteca-server/internal/objectstore"
	"github.com/bibliodigital/biblioteca-server/internal/store"
)

// CreateBookParams carries the multipart fields of a book creation.
type CreateBookParams struct {
	Titulo      string
	AutorID     int64
	Descripcion string
	Inventario  bool
	Cover       Upload
}

// BookService manages the catalog, including cover uploads.
type BookService struct {
	store   *store.Store
	objects *objectstore.Storage
	logger  *slog.Logger
}

// NewBookService creates a BookService.
func NewBookService(s *store.Store, objects *objectstore.Storage, logger *slog.Logger) *BookService {
	return &BookService{
		store:   s,
		objects: objects,
		logger:  logger,
	}
}

// Create uploads the cover, then inserts the book. If the insert fails
// the uploaded object is deleted so no orphan is left behind.
func (s *BookService) Create(ctx context.Context, p CreateBookParams) (*domain.Book, error) {
	url, objectName, err := s.objects.Put(objectstore.FolderCovers, p.Cover.Filename, p.Cover.Data)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "Error al subir imagen")
	}

	book := &domain.Book{
		Titulo:        p.Titulo,
		AutorID:       p.AutorID,
		Descripcion:   p.Descripcion,
		ImagenPortada: url,
		Inventario:    p.Inventario,
	}

	if err := s.store.CreateBook(ctx, book); err != nil {
		s.compensate(objectName)
		return nil, translate(err)
	}

	return book, nil
}

// Get returns the book with the given ID.
func (s *BookService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.store.Books.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("El libro no se encontró")
		}
		return nil, translate(err)
	}
	return book, nil
}

// List returns all books in ascending ID order.
func (s *BookService) List(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.store.Books.List(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return books, nil
}

// Update applies a partial update, optionally replacing the cover.
// A request with neither fields nor a file is rejected.
func (s *BookService) Update(ctx context.Context, id int64, patch domain.BookPatch, cover *Upload) (*domain.Book, error) {
	if patch.IsZero() && cover == nil {
		return nil, domainerrors.Validation(msgEmptyUpdate)
	}

	var objectName string
	if cover != nil {
		url, name, err := s.objects.Put(objectstore.FolderCovers, cover.Filename, cover.Data)
		if err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "Error al subir imagen")
		}
		objectName = name
		patch.ImagenPortada = &url
	}

	book, err := s.store.UpdateBook(ctx, id, patch)
	if err != nil {
		s.compensate(objectName)
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("Libro no encontrado")
		}
		return nil, translate(err)
	}

	return book, nil
}

// Delete removes the book and returns the confirmation message.
// The stored cover is kept: its URL may still be referenced elsewhere.
func (s *BookService) Delete(ctx context.Context, id int64) (string, error) {
	if err := s.store.Books.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domainerrors.NotFound("Libro no encontrado")
		}
		return "", translate(err)
	}
	return "Libro eliminado exitosamente", nil
}

// compensate removes an uploaded object after a failed write.
func (s *BookService) compensate(objectName string) {
	if objectName == "" {
		return
	}
	if err := s.objects.Delete(objectName); err != nil && s.logger != nil {
		s.logger.Warn("failed to delete orphaned cover", "object", objectName, "error", err)
	}
}
