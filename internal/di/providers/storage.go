package providers

import (
	"fmt"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/bibliodigital/biblioteca-server/internal/config"
	"github.com/bibliodigital/biblioteca-server/internal/logger"
	"github.com/bibliodigital/biblioteca-server/internal/objectstore"
)

// ProvideObjectStorage provides the object store gateway for uploaded images.
func ProvideObjectStorage(i do.Injector) (*objectstore.Storage, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	basePath := filepath.Join(cfg.Data.BasePath, "objects")
	storage, err := objectstore.New(basePath, cfg.Storage.Bucket, cfg.Storage.Domain)
	if err != nil {
		return nil, fmt.Errorf("object storage: %w", err)
	}

	log.Info("Object storage initialized",
		"path", basePath,
		"bucket", cfg.Storage.Bucket,
		"domain", cfg.Storage.Domain,
	)

	return storage, nil
}
