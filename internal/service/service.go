// Package service implements the business logic between the HTTP API
// and the store: wire-level error messages, image uploads with
// compensation, and partial updates.
package service

import (
	"errors"
	"log/slog"
	"net/http"

	domainerrors "github.com/bibliodigital/biblioteca-server/internal/errors"
	"github.com/bibliodigital/biblioteca-server/internal/objectstore"
	"github.com/bibliodigital/biblioteca-server/internal/store"
)

// msgEmptyUpdate is returned when an update request carries no fields.
const msgEmptyUpdate = "No hay datos para actualizar"

// Services bundles all entity services.
type Services struct {
	Authors    *AuthorService
	Readers    *ReaderService
	Librarians *LibrarianService
	Books      *BookService
	Loans      *LoanService
}

// New creates all services on top of the store and object storage.
func New(s *store.Store, objects *objectstore.Storage, logger *slog.Logger) *Services {
	return &Services{
		Authors:    NewAuthorService(s, logger),
		Readers:    NewReaderService(s, logger),
		Librarians: NewLibrarianService(s, logger),
		Books:      NewBookService(s, objects, logger),
		Loans:      NewLoanService(s, objects, logger),
	}
}

// Upload is an in-memory file received from a multipart form.
type Upload struct {
	Filename string
	Data     []byte
}

// translate converts store errors into domain errors. Store sentinels
// carry both the wire message and the HTTP status, so the mapping is
// mechanical. Callers translate the generic store.ErrNotFound to an
// entity-specific message before calling this.
func translate(err error) error {
	var serr *store.Error
	if errors.As(err, &serr) {
		switch serr.HTTPCode() {
		case http.StatusNotFound:
			return domainerrors.NotFound(serr.Message)
		case http.StatusBadRequest:
			return domainerrors.Validation(serr.Message)
		case http.StatusConflict:
			return domainerrors.Conflict(serr.Message)
		}
	}

	var derr *domainerrors.Error
	if errors.As(err, &derr) {
		return derr
	}

	return domainerrors.Wrap(err, domainerrors.CodeInternal, "unexpected storage error")
}
