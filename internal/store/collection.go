package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

// Collection provides generic CRUD operations for a domain type keyed
// by a sequential integer ID. IDs are assigned inside the insert
// transaction as the current maximum plus one, so deleting the highest
// record makes its ID available again.
type Collection[T any] struct {
	store  *Store
	prefix string
	getID  func(*T) int64
	setID  func(*T, int64)
}

// newCollection creates a Collection for type T under the given key prefix.
func newCollection[T any](s *Store, prefix string, getID func(*T) int64, setID func(*T, int64)) *Collection[T] {
	return &Collection[T]{
		store:  s,
		prefix: prefix,
		getID:  getID,
		setID:  setID,
	}
}

// key builds the storage key for an ID. Zero-padding keeps
// lexicographic key order equal to numeric ID order.
func (c *Collection[T]) key(id int64) []byte {
	return []byte(fmt.Sprintf("%s%010d", c.prefix, id))
}

// Create assigns the next free ID to the entity and stores it.
// The ID assignment and the insert happen in one transaction.
func (c *Collection[T]) Create(ctx context.Context, entity *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.store.db.Update(func(txn *badger.Txn) error {
		id, err := c.nextID(txn)
		if err != nil {
			return err
		}
		c.setID(entity, id)
		return c.put(txn, entity)
	})
}

// Get retrieves an entity by ID.
// Returns ErrNotFound if the entity does not exist.
func (c *Collection[T]) Get(ctx context.Context, id int64) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entity *T
	err := c.store.db.View(func(txn *badger.Txn) error {
		var err error
		entity, err = c.get(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return entity, nil
}

// List returns all entities in ascending ID order.
// An empty collection yields an empty (non-nil) slice.
func (c *Collection[T]) List(ctx context.Context) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entities := make([]*T, 0)
	err := c.store.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(c.prefix)
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(c.prefix)); it.ValidForPrefix([]byte(c.prefix)); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var entity T
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entity)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}
			entities = append(entities, &entity)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entities, nil
}

// Update loads the entity, applies mutate to it, and stores the result
// in a single transaction. Returns ErrNotFound if the entity does not
// exist; an error from mutate aborts the transaction.
func (c *Collection[T]) Update(ctx context.Context, id int64, mutate func(*T) error) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entity *T
	err := c.store.db.Update(func(txn *badger.Txn) error {
		var err error
		entity, err = c.get(txn, id)
		if err != nil {
			return err
		}
		if err := mutate(entity); err != nil {
			return err
		}
		return c.put(txn, entity)
	})
	if err != nil {
		return nil, err
	}

	return entity, nil
}

// Delete deletes an entity by ID.
// Returns ErrNotFound if the entity does not exist.
func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.store.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(c.key(id)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get key: %w", err)
		}
		if err := txn.Delete(c.key(id)); err != nil {
			return fmt.Errorf("failed to delete key: %w", err)
		}
		return nil
	})
}

// get reads an entity inside an open transaction.
func (c *Collection[T]) get(txn *badger.Txn, id int64) (*T, error) {
	item, err := txn.Get(c.key(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key: %w", err)
	}

	var entity T
	err = item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, &entity); err != nil {
			return fmt.Errorf("failed to unmarshal entity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entity, nil
}

// put writes an entity inside an open transaction under its current ID.
func (c *Collection[T]) put(txn *badger.Txn, entity *T) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}
	if err := txn.Set(c.key(c.getID(entity)), data); err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}
	return nil
}

// delete removes an entity inside an open transaction.
// Returns ErrNotFound if the key is missing.
func (c *Collection[T]) delete(txn *badger.Txn, id int64) error {
	if _, err := txn.Get(c.key(id)); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get key: %w", err)
	}
	if err := txn.Delete(c.key(id)); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}
	return nil
}

// exists reports whether an entity exists inside an open transaction.
func (c *Collection[T]) exists(txn *badger.Txn, id int64) (bool, error) {
	_, err := txn.Get(c.key(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get key: %w", err)
	}
	return true, nil
}

// nextID finds the highest assigned ID by a reverse prefix scan and
// returns it plus one, or 1 for an empty collection. Must run inside
// the same transaction as the insert that uses the ID.
func (c *Collection[T]) nextID(txn *badger.Txn) (int64, error) {
	opts := badger.DefaultIteratorOptions
	opts.Reverse = true
	opts.PrefetchValues = false
	opts.Prefix = []byte(c.prefix)

	it := txn.NewIterator(opts)
	defer it.Close()

	// Seek past every possible key under the prefix; the reverse
	// iterator then lands on the highest existing one.
	seek := append([]byte(c.prefix), 0xFF)
	it.Seek(seek)
	if !it.ValidForPrefix([]byte(c.prefix)) {
		return 1, nil
	}

	key := string(it.Item().Key())
	id, err := strconv.ParseInt(key[len(c.prefix):], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed key %q: %w", key, err)
	}

	return id + 1, nil
}
