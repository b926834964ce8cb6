package jsonstore

import (
	"errors"
	"os"
	"time"

	"github.com/digitalloto/loto-backend/internal/models"
	"golang.org/x/exp/slog"
)

// Seed writes starter data for collections whose files do not exist yet, so a
// fresh install has something to show. Existing files are never touched.
func Seed(store *Store) {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := time.Now()

	if store.missing(drawsCollection) {
		file := drawsFile{Draws: []*models.Draw{
			{
				ID:           1,
				Title:        "Big Loto #1",
				Type:         models.DrawTypeBig,
				Cost:         50,
				NumbersCount: 8,
				ButtonText:   "Play now!",
				Currency:     "COINS",
				Numbers:      []int{},
				CreatedAt:    now,
			},
			{
				ID:           2,
				Title:        "Express Loto #1",
				Type:         models.DrawTypeExpress,
				Cost:         20,
				NumbersCount: 6,
				ButtonText:   "Play now!",
				Currency:     "COINS",
				Numbers:      []int{},
				CreatedAt:    now,
			},
		}}
		if err := store.save(drawsCollection, &file); err == nil {
			slog.Info("Seeded draws collection")
		}
	}

	if store.missing(packagesCollection) {
		file := packagesFile{Packages: []*models.Package{
			{ID: 1, Name: "VIP package", Category: models.PackageCategoryBig, Price: 200, Currency: "COINS", CreatedDate: now},
			{ID: 2, Name: "Express set", Category: models.PackageCategoryExpress, Price: 100, Currency: "COINS", CreatedDate: now},
			{ID: 3, Name: "Universal package", Category: models.PackageCategoryAll, Price: 250, Currency: "COINS", CreatedDate: now},
		}}
		if err := store.save(packagesCollection, &file); err == nil {
			slog.Info("Seeded packages collection")
		}
	}

	if store.missing(bannersCollection) {
		file := bannersFile{Banners: []*models.Banner{
			{ID: 1, Title: "One million jackpot!", Subtitle: "Join the Big Loto", Image: "banner1.jpg", Active: true},
			{ID: 2, Title: "Fast wins", Subtitle: "Express Loto every day", Image: "banner2.jpg", Active: true},
		}}
		if err := store.save(bannersCollection, &file); err == nil {
			slog.Info("Seeded banners collection")
		}
	}
}

func (s *Store) missing(name string) bool {
	_, err := os.Stat(s.path(name))
	return errors.Is(err, os.ErrNotExist)
}
