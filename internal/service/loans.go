package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
	domainerrors "github.com/bibliodigital/biblioteca-server/internal/errors"
	"github.com/bibliodigital/biblioteca-server/internal/objectstore"
	"github.com/bibliodigital/biblioteca-server/internal/store"
)

// CreateLoanParams carries the multipart fields of a loan creation.
type CreateLoanParams struct {
	LectorID        int64
	LibroID         int64
	BibliotecarioID int64
	Credencial      Upload
}

// LoanService manages the loan lifecycle, including credential photo
// uploads and book availability.
type LoanService struct {
	store   *store.Store
	objects *objectstore.Storage
	logger  *slog.Logger
	now     func() time.Time
}

// NewLoanService creates a LoanService.
func NewLoanService(s *store.Store, objects *objectstore.Storage, logger *slog.Logger) *LoanService {
	return &LoanService{
		store:   s,
		objects: objects,
		logger:  logger,
		now:     time.Now,
	}
}

// Create uploads the credential photo and registers the loan. The loan
// starts now and is due in three days; the store validates all
// references and takes the book out of inventory atomically. If that
// fails, the uploaded photo is deleted.
func (s *LoanService) Create(ctx context.Context, p CreateLoanParams) (*domain.Loan, error) {
	url, objectName, err := s.objects.Put(objectstore.FolderCredentials, p.Credencial.Filename, p.Credencial.Data)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "Error al subir imagen")
	}

	loan := domain.NewLoan(p.LectorID, p.LibroID, p.BibliotecarioID, url, s.now())

	if err := s.store.CreateLoan(ctx, loan); err != nil {
		s.compensate(objectName)
		return nil, translate(err)
	}

	return loan, nil
}

// Get returns the loan with the given ID.
func (s *LoanService) Get(ctx context.Context, id int64) (*domain.Loan, error) {
	loan, err := s.store.Loans.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("El prestamo no se encontró")
		}
		return nil, translate(err)
	}
	return loan, nil
}

// List returns all loans in ascending ID order.
func (s *LoanService) List(ctx context.Context) ([]*domain.Loan, error) {
	loans, err := s.store.Loans.List(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return loans, nil
}

// Update applies a partial update, optionally replacing the credential
// photo. Changing the loan date recomputes the due date; changed
// references are re-validated by the store.
func (s *LoanService) Update(ctx context.Context, id int64, patch domain.LoanPatch, credencial *Upload) (*domain.Loan, error) {
	if patch.IsZero() && credencial == nil {
		return nil, domainerrors.Validation(msgEmptyUpdate)
	}

	var objectName string
	if credencial != nil {
		url, name, err := s.objects.Put(objectstore.FolderCredentials, credencial.Filename, credencial.Data)
		if err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "Error al subir imagen")
		}
		objectName = name
		patch.FotoCredencial = &url
	}

	loan, err := s.store.UpdateLoan(ctx, id, patch)
	if err != nil {
		s.compensate(objectName)
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("El préstamo no se encontró")
		}
		return nil, translate(err)
	}

	return loan, nil
}

// Delete removes the loan, returning its book to inventory, and
// returns the confirmation message.
func (s *LoanService) Delete(ctx context.Context, id int64) (string, error) {
	if err := s.store.DeleteLoan(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domainerrors.NotFound("El préstamo no se encontró")
		}
		return "", translate(err)
	}
	return "El préstamo se eliminó correctamente", nil
}

// compensate removes an uploaded object after a failed write.
func (s *LoanService) compensate(objectName string) {
	if objectName == "" {
		return
	}
	if err := s.objects.Delete(objectName); err != nil && s.logger != nil {
		s.logger.Warn("failed to delete orphaned credential photo", "object", objectName, "error", err)
	}
}
