package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
	"github.com/rios0rios0/nugetcheck/internal/domain/repositories"
)

// DocumentRepository reads documents from the local file system.
type DocumentRepository struct {
	fileSystem fs.FS
}

var _ repositories.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a repository reading paths as given,
// relative to the working directory.
func NewDocumentRepository() repositories.DocumentRepository {
	return &DocumentRepository{}
}

// NewDocumentRepositoryFS creates a repository reading from fileSystem,
// where paths must be valid fs.FS paths.
func NewDocumentRepositoryFS(fileSystem fs.FS) *DocumentRepository {
	return &DocumentRepository{fileSystem: fileSystem}
}

func (it *DocumentRepository) ReadProject(
	ctx context.Context, path string,
) (*entities.ProjectDocument, error) {
	var document *entities.ProjectDocument
	err := it.read(ctx, path, func(reader io.Reader) (err error) {
		document, err = entities.ParseProjectDocument(reader)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %q: %w", path, err)
	}
	return document, nil
}

func (it *DocumentRepository) ReadManifest(
	ctx context.Context, path string,
) (*entities.ManifestDocument, error) {
	var document *entities.ManifestDocument
	err := it.read(ctx, path, func(reader io.Reader) (err error) {
		document, err = entities.ParseManifestDocument(reader)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read nuspec file %q: %w", path, err)
	}
	return document, nil
}

func (it *DocumentRepository) ReadPackagesConfig(
	ctx context.Context, path string, allowMissing bool,
) (*entities.PackagesConfigDocument, error) {
	var document *entities.PackagesConfigDocument
	err := it.read(ctx, path, func(reader io.Reader) (err error) {
		document, err = entities.ParsePackagesConfigDocument(reader)
		return err
	})
	if allowMissing && errors.Is(err, fs.ErrNotExist) {
		return entities.EmptyPackagesConfigDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read packages config file %q: %w", path, err)
	}
	return document, nil
}

func (it *DocumentRepository) read(ctx context.Context, path string, parse func(io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := it.open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return parse(file)
}

func (it *DocumentRepository) open(path string) (fs.File, error) {
	if it.fileSystem != nil {
		return it.fileSystem.Open(path)
	}
	return os.Open(path)
}
