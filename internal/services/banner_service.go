package services

import (
	"context"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/repositories"
)

// Compile-time check to ensure BannerServiceImpl implements BannerService
var _ BannerService = (*BannerServiceImpl)(nil)

// BannerServiceImpl serves landing-page banner listings
type BannerServiceImpl struct {
	bannerRepo repositories.BannerRepository
}

// NewBannerService creates a new BannerServiceImpl
func NewBannerService(bannerRepo repositories.BannerRepository) *BannerServiceImpl {
	return &BannerServiceImpl{bannerRepo: bannerRepo}
}

// GetBanners returns the active banners
func (s *BannerServiceImpl) GetBanners(ctx context.Context) ([]*models.Banner, error) {
	banners, err := s.bannerRepo.FindAll(ctx)
	if err != nil {
		return nil, newError(CodeLoadFailed, "failed to load banners")
	}
	active := []*models.Banner{}
	for _, banner := range banners {
		if banner.Active {
			active = append(active, banner)
		}
	}
	return active, nil
}
