package service

import (
	"log/slog"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
	"github.com/bibliodigital/biblioteca-server/internal/store"
)

// ReaderService manages library members.
type ReaderService = EntityService[domain.Reader, domain.ReaderPatch]

// NewReaderService creates a ReaderService.
func NewReaderService(s *store.Store, logger *slog.Logger) *ReaderService {
	return newEntityService[domain.Reader, domain.ReaderPatch](s.Readers, Messages{
		NotFound:       "El lector no se encontró",
		NotFoundUpdate: "Lector no encontrado",
		NotFoundDelete: "Lector no encontrado",
		Deleted:        "Lector eliminado exitosamente",
	}, logger)
}
