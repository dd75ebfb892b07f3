package store

import (
	"context"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
)

// CreateBook validates the author reference and inserts the book in
// one transaction. Returns ErrAuthorNotFound if the author is missing.
func (s *Store) CreateBook(ctx context.Context, book *domain.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		ok, err := s.Authors.exists(txn, book.AutorID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAuthorNotFound
		}

		id, err := s.Books.nextID(txn)
		if err != nil {
			return err
		}
		book.ID = id
		return s.Books.put(txn, book)
	})
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "book created",
			slog.Int64("id", book.ID),
			slog.Int64("autor_id", book.AutorID),
		)
	}

	return nil
}

// UpdateBook applies the patch to an existing book, re-validating the
// author reference when the patch changes it. The read, validation,
// and write happen in one transaction.
func (s *Store) UpdateBook(ctx context.Context, id int64, patch domain.BookPatch) (*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var book *domain.Book
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		book, err = s.Books.get(txn, id)
		if err != nil {
			return err
		}

		if patch.AutorID != nil && *patch.AutorID != book.AutorID {
			ok, err := s.Authors.exists(txn, *patch.AutorID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAuthorNotFound
			}
		}

		patch.Apply(book)
		return s.Books.put(txn, book)
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}
