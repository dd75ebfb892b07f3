// Package store persists the library catalog in a Badger key-value
// database. Every record is stored as JSON under a per-entity key
// prefix, with zero-padded decimal IDs so that lexicographic key order
// matches numeric ID order.
package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	Authors    *Collection[domain.Author]
	Readers    *Collection[domain.Reader]
	Librarians *Collection[domain.Librarian]
	Books      *Collection[domain.Book]
	Loans      *Collection[domain.Loan]
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	store.Authors = newCollection(store, "autor:",
		func(a *domain.Author) int64 { return a.ID },
		func(a *domain.Author, id int64) { a.ID = id },
	)
	store.Readers = newCollection(store, "lector:",
		func(r *domain.Reader) int64 { return r.ID },
		func(r *domain.Reader, id int64) { r.ID = id },
	)
	store.Librarians = newCollection(store, "bibliotecario:",
		func(l *domain.Librarian) int64 { return l.ID },
		func(l *domain.Librarian, id int64) { l.ID = id },
	)
	store.Books = newCollection(store, "libro:",
		func(b *domain.Book) int64 { return b.ID },
		func(b *domain.Book, id int64) { b.ID = id },
	)
	store.Loans = newCollection(store, "prestamo:",
		func(l *domain.Loan) int64 { return l.ID },
		func(l *domain.Loan, id int64) { l.ID = id },
	)

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}
