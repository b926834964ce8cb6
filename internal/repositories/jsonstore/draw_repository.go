package jsonstore

import (
	"context"
	"time"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/repositories"
)

const drawsCollection = "draws"

type drawsFile struct {
	Draws []*models.Draw `json:"draws"`
}

// DrawRepository implements repositories.DrawRepository on top of the store
type DrawRepository struct {
	store *Store
}

// NewDrawRepository creates a new DrawRepository
func NewDrawRepository(store *Store) repositories.DrawRepository {
	return &DrawRepository{store: store}
}

// FindAll returns every draw
func (r *DrawRepository) FindAll(ctx context.Context) ([]*models.Draw, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file drawsFile
	r.store.load(drawsCollection, &file)
	if file.Draws == nil {
		file.Draws = []*models.Draw{}
	}
	return file.Draws, nil
}

// FindByID finds a draw by ID
func (r *DrawRepository) FindByID(ctx context.Context, id int) (*models.Draw, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file drawsFile
	r.store.load(drawsCollection, &file)
	for _, draw := range file.Draws {
		if draw.ID == id {
			return draw, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// Create appends a new draw, assigning the next free ID
func (r *DrawRepository) Create(ctx context.Context, draw *models.Draw) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file drawsFile
	r.store.load(drawsCollection, &file)

	ids := make([]int, 0, len(file.Draws))
	for _, d := range file.Draws {
		ids = append(ids, d.ID)
	}
	draw.ID = NextID(ids)
	draw.CreatedAt = time.Now()

	file.Draws = append(file.Draws, draw)
	return r.store.save(drawsCollection, &file)
}

// Update replaces the stored draw with the same ID
func (r *DrawRepository) Update(ctx context.Context, draw *models.Draw) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file drawsFile
	r.store.load(drawsCollection, &file)
	for i, d := range file.Draws {
		if d.ID == draw.ID {
			file.Draws[i] = draw
			return r.store.save(drawsCollection, &file)
		}
	}
	return repositories.ErrNotFound
}

// Delete removes a draw by ID
func (r *DrawRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file drawsFile
	r.store.load(drawsCollection, &file)
	kept := file.Draws[:0]
	found := false
	for _, d := range file.Draws {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return repositories.ErrNotFound
	}
	file.Draws = kept
	return r.store.save(drawsCollection, &file)
}
