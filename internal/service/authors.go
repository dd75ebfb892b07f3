package service

import (
	"log/slog"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
	"github.com/bibliodigital/biblioteca-server/internal/store"
)

// AuthorService manages book authors.
type AuthorService = EntityService[domain.Author, domain.AuthorPatch]

// NewAuthorService creates an AuthorService.
func NewAuthorService(s *store.Store, logger *slog.Logger) *AuthorService {
	return newEntityService[domain.Author, domain.AuthorPatch](s.Authors, Messages{
		NotFound:       "El autor no se encontró",
		NotFoundUpdate: "El autor no se encontró",
		NotFoundDelete: "El autor no se encontró",
		Deleted:        "El autor se eliminó correctamente",
	}, logger)
}
