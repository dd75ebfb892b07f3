package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
)

// CreateLoan validates all three references, checks the book is in
// inventory, inserts the loan, and marks the book as loaned out. All
// of it runs in one transaction, so a failure leaves no trace and two
// concurrent loans cannot take the same copy.
//
// Validation order is fixed: reader, then book (existence before
// availability), then librarian.
func (s *Store) CreateLoan(ctx context.Context, loan *domain.Loan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		ok, err := s.Readers.exists(txn, loan.LectorID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrReaderNotFound
		}

		book, err := s.Books.get(txn, loan.LibroID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return ErrBookNotFound
			}
			return err
		}
		if !book.Inventario {
			return ErrBookNotAvailable
		}

		ok, err = s.Librarians.exists(txn, loan.BibliotecarioID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrLibrarianNotFound
		}

		id, err := s.Loans.nextID(txn)
		if err != nil {
			return err
		}
		loan.ID = id
		if err := s.Loans.put(txn, loan); err != nil {
			return err
		}

		book.Inventario = false
		return s.Books.put(txn, book)
	})
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "loan created",
			slog.Int64("id", loan.ID),
			slog.Int64("libro_id", loan.LibroID),
			slog.Int64("lector_id", loan.LectorID),
		)
	}

	return nil
}

// UpdateLoan applies the patch to an existing loan, re-validating
// whichever references the patch changes. The book availability flags
// are not touched: swapping the book on a loan is a correction, not a
// return plus a new loan.
func (s *Store) UpdateLoan(ctx context.Context, id int64, patch domain.LoanPatch) (*domain.Loan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var loan *domain.Loan
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		loan, err = s.Loans.get(txn, id)
		if err != nil {
			return err
		}

		if patch.LectorID != nil {
			ok, err := s.Readers.exists(txn, *patch.LectorID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrReaderNotFound
			}
		}
		if patch.LibroID != nil {
			ok, err := s.Books.exists(txn, *patch.LibroID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrBookNotFound
			}
		}
		if patch.BibliotecarioID != nil {
			ok, err := s.Librarians.exists(txn, *patch.BibliotecarioID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrLibrarianNotFound
			}
		}

		patch.Apply(loan)
		return s.Loans.put(txn, loan)
	})
	if err != nil {
		return nil, err
	}

	return loan, nil
}

// DeleteLoan removes the loan and returns its book to inventory in one
// transaction. A book that was deleted while on loan is skipped rather
// than resurrected.
func (s *Store) DeleteLoan(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		loan, err := s.Loans.get(txn, id)
		if err != nil {
			return err
		}

		if err := s.Loans.delete(txn, id); err != nil {
			return err
		}

		book, err := s.Books.get(txn, loan.LibroID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return err
		}
		book.Inventario = true
		return s.Books.put(txn, book)
	})
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "loan deleted",
			slog.Int64("id", id),
		)
	}

	return nil
}
