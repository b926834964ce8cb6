package jsonstore

import (
	"context"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/repositories"
)

const bannersCollection = "banners"

type bannersFile struct {
	Banners []*models.Banner `json:"banners"`
}

// BannerRepository implements repositories.BannerRepository on top of the store
type BannerRepository struct {
	store *Store
}

// NewBannerRepository creates a new BannerRepository
func NewBannerRepository(store *Store) repositories.BannerRepository {
	return &BannerRepository{store: store}
}

// FindAll returns every banner
func (r *BannerRepository) FindAll(ctx context.Context) ([]*models.Banner, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file bannersFile
	r.store.load(bannersCollection, &file)
	if file.Banners == nil {
		file.Banners = []*models.Banner{}
	}
	return file.Banners, nil
}
