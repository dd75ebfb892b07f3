package providers

import (
	"github.com/samber/do/v2"

	"github.com/bibliodigital/biblioteca-server/internal/logger"
	"github.com/bibliodigital/biblioteca-server/internal/objectstore"
	"github.com/bibliodigital/biblioteca-server/internal/service"
)

// ProvideServices provides the business service bundle.
func ProvideServices(i do.Injector) (*service.Services, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	objects := do.MustInvoke[*objectstore.Storage](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.New(storeHandle.Store, objects, log.Logger), nil
}
