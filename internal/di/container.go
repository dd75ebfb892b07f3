// Package di provides dependency injection configuration for the biblioteca server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/bibliodigital/biblioteca-server/internal/config"
	"github.com/bibliodigital/biblioteca-server/internal/di/providers"
	"github.com/bibliodigital/biblioteca-server/internal/logger"
	"github.com/bibliodigital/biblioteca-server/internal/objectstore"
	"github.com/bibliodigital/biblioteca-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Object storage
	do.Provide(injector, providers.ProvideObjectStorage)

	// Business services
	do.Provide(injector, providers.ProvideServices)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services. This triggers lazy initialization
// of every provider in dependency order.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*objectstore.Storage](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.Services](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}
