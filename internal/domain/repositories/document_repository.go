package repositories

import (
	"context"

	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
)

// DocumentRepository loads the three documents a check compares. Each
// implementation owns locating, reading and parsing them.
type DocumentRepository interface {
	// ReadProject loads an MSBuild project file (.csproj).
	ReadProject(ctx context.Context, path string) (*entities.ProjectDocument, error)

	// ReadManifest loads a nuspec file.
	ReadManifest(ctx context.Context, path string) (*entities.ManifestDocument, error)

	// ReadPackagesConfig loads a packages.config file. When allowMissing is
	// set, a file that doesn't exist yields an empty document.
	ReadPackagesConfig(
		ctx context.Context,
		path string,
		allowMissing bool,
	) (*entities.PackagesConfigDocument, error)
}
