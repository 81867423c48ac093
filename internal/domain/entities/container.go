package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewVersionChecker); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *VersionChecker) VersionMatcher {
		return impl
	}); err != nil {
		return err
	}

	return container.Provide(NewVerifier)
}
