package jsonstore

import (
	"context"
	"time"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/repositories"
)

const packagesCollection = "packages"

type packagesFile struct {
	Packages []*models.Package `json:"packages"`
}

// PackageRepository implements repositories.PackageRepository on top of the store
type PackageRepository struct {
	store *Store
}

// NewPackageRepository creates a new PackageRepository
func NewPackageRepository(store *Store) repositories.PackageRepository {
	return &PackageRepository{store: store}
}

// FindAll returns every package
func (r *PackageRepository) FindAll(ctx context.Context) ([]*models.Package, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file packagesFile
	r.store.load(packagesCollection, &file)
	if file.Packages == nil {
		file.Packages = []*models.Package{}
	}
	return file.Packages, nil
}

// FindByID finds a package by ID
func (r *PackageRepository) FindByID(ctx context.Context, id int) (*models.Package, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file packagesFile
	r.store.load(packagesCollection, &file)
	for _, pkg := range file.Packages {
		if pkg.ID == id {
			return pkg, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// Create appends a new package, assigning the next free ID
func (r *PackageRepository) Create(ctx context.Context, pkg *models.Package) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file packagesFile
	r.store.load(packagesCollection, &file)

	ids := make([]int, 0, len(file.Packages))
	for _, p := range file.Packages {
		ids = append(ids, p.ID)
	}
	pkg.ID = NextID(ids)
	pkg.CreatedDate = time.Now()

	file.Packages = append(file.Packages, pkg)
	return r.store.save(packagesCollection, &file)
}

// Update replaces the stored package with the same ID and stamps updated_date
func (r *PackageRepository) Update(ctx context.Context, pkg *models.Package) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file packagesFile
	r.store.load(packagesCollection, &file)
	for i, p := range file.Packages {
		if p.ID == pkg.ID {
			now := time.Now()
			pkg.UpdatedDate = &now
			file.Packages[i] = pkg
			return r.store.save(packagesCollection, &file)
		}
	}
	return repositories.ErrNotFound
}

// Delete removes a package by ID
func (r *PackageRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file packagesFile
	r.store.load(packagesCollection, &file)
	kept := file.Packages[:0]
	found := false
	for _, p := range file.Packages {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return repositories.ErrNotFound
	}
	file.Packages = kept
	return r.store.save(packagesCollection, &file)
}
