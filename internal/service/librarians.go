package service

import (
	"log/slog"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
	"github.com/bibliodigital/biblioteca-server/internal/store"
)

// LibrarianService manages library staff.
type LibrarianService = EntityService[domain.Librarian, domain.LibrarianPatch]

// NewLibrarianService creates a LibrarianService.
func NewLibrarianService(s *store.Store, logger *slog.Logger) *LibrarianService {
	return newEntityService[domain.Librarian, domain.LibrarianPatch](s.Librarians, Messages{
		NotFound:       "El bibliotecario no se encontró",
		NotFoundUpdate: "Bibliotecario no encontrado",
		NotFoundDelete: "Bibliotecario no encontrado",
		Deleted:        "Bibliotecario eliminado exitosamente",
	}, logger)
}
