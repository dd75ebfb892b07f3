package service

import (
	"context"
	"errors"
	"log/slog"

	domainerrors "github.com/bibliodigital/biblioteca-server/internal/errors"
	"github.com/bibliodigital/biblioteca-server/internal/store"
)

// Patch applies a partial update to an entity of type T.
type Patch[T any] interface {
	IsZero() bool
	Apply(*T)
}

// Messages holds the wire messages of one entity type. The API has
// never been consistent about them (some say "no se encontró", others
// "no encontrado"), and clients match on the strings, so each
// operation keeps its own.
type Messages struct {
	NotFound       string // Get
	NotFoundUpdate string // Update
	NotFoundDelete string // Delete
	Deleted        string // Delete success
}

// EntityService implements plain CRUD for entities without referential
// or upload concerns. Authors, readers, and librarians are
// instantiations of it.
type EntityService[T any, P Patch[T]] struct {
	col    *store.Collection[T]
	msgs   Messages
	logger *slog.Logger
}

func newEntityService[T any, P Patch[T]](col *store.Collection[T], msgs Messages, logger *slog.Logger) *EntityService[T, P] {
	return &EntityService[T, P]{
		col:    col,
		msgs:   msgs,
		logger: logger,
	}
}

// Create stores a new entity and returns it with its assigned ID.
func (s *EntityService[T, P]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := s.col.Create(ctx, entity); err != nil {
		return nil, translate(err)
	}
	return entity, nil
}

// Get returns the entity with the given ID.
func (s *EntityService[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	entity, err := s.col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound(s.msgs.NotFound)
		}
		return nil, translate(err)
	}
	return entity, nil
}

// List returns all entities in ascending ID order.
func (s *EntityService[T, P]) List(ctx context.Context) ([]*T, error) {
	entities, err := s.col.List(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return entities, nil
}

// Update applies a partial update and returns the updated entity.
// An empty patch is rejected.
func (s *EntityService[T, P]) Update(ctx context.Context, id int64, patch P) (*T, error) {
	if patch.IsZero() {
		return nil, domainerrors.Validation(msgEmptyUpdate)
	}

	entity, err := s.col.Update(ctx, id, func(e *T) error {
		patch.Apply(e)
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound(s.msgs.NotFoundUpdate)
		}
		return nil, translate(err)
	}

	return entity, nil
}

// Delete removes the entity and returns the confirmation message.
func (s *EntityService[T, P]) Delete(ctx context.Context, id int64) (string, error) {
	if err := s.col.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domainerrors.NotFound(s.msgs.NotFoundDelete)
		}
		return "", translate(err)
	}
	return s.msgs.Deleted, nil
}
