package repositories

import (
	"github.com/rios0rios0/nugetcheck/internal/infrastructure/repositories/filesystem"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(filesystem.NewDocumentRepository)
}
