package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
	"github.com/rios0rios0/nugetcheck/internal/domain/repositories"
)

// SpyDocumentRepository implements repositories.DocumentRepository as a configurable spy.
type SpyDocumentRepository struct {
	// --- ReadProject ---
	Project      *entities.ProjectDocument
	ProjectErr   error
	ProjectPaths []string

	// --- ReadManifest ---
	Manifest      *entities.ManifestDocument
	ManifestErr   error
	ManifestPaths []string

	// --- ReadPackagesConfig ---
	PackagesConfig      *entities.PackagesConfigDocument
	PackagesConfigErr   error
	PackagesConfigPaths []string
	AllowMissingFlags   []bool
}

var _ repositories.DocumentRepository = (*SpyDocumentRepository)(nil)

func (r *SpyDocumentRepository) ReadProject(
	_ context.Context, path string,
) (*entities.ProjectDocument, error) {
	r.ProjectPaths = append(r.ProjectPaths, path)
	return r.Project, r.ProjectErr
}

func (r *SpyDocumentRepository) ReadManifest(
	_ context.Context, path string,
) (*entities.ManifestDocument, error) {
	r.ManifestPaths = append(r.ManifestPaths, path)
	return r.Manifest, r.ManifestErr
}

func (r *SpyDocumentRepository) ReadPackagesConfig(
	_ context.Context, path string, allowMissing bool,
) (*entities.PackagesConfigDocument, error) {
	r.PackagesConfigPaths = append(r.PackagesConfigPaths, path)
	r.AllowMissingFlags = append(r.AllowMissingFlags, allowMissing)
	return r.PackagesConfig, r.PackagesConfigErr
}

// Calls returns how many documents were requested in total.
func (r *SpyDocumentRepository) Calls() int {
	return len(r.ProjectPaths) + len(r.ManifestPaths) + len(r.PackagesConfigPaths)
}
