package repositories

import (
	"context"
	"errors"

	"github.com/digitalloto/loto-backend/internal/models"
)

// ErrNotFound is returned when a record does not exist in its collection
var ErrNotFound = errors.New("record not found")

// DrawRepository defines the interface for draw data operations
type DrawRepository interface {
	FindAll(ctx context.Context) ([]*models.Draw, error)
	FindByID(ctx context.Context, id int) (*models.Draw, error)
	Create(ctx context.Context, draw *models.Draw) error
	Update(ctx context.Context, draw *models.Draw) error
	Delete(ctx context.Context, id int) error
}

// TicketRepository defines the interface for ticket data operations
type TicketRepository interface {
	FindAll(ctx context.Context) ([]*models.Ticket, error)
	FindByID(ctx context.Context, id int) (*models.Ticket, error)
	FindByDrawID(ctx context.Context, drawID int) ([]*models.Ticket, error)
	Create(ctx context.Context, ticket *models.Ticket) error
	Update(ctx context.Context, ticket *models.Ticket) error
	// UpdateMany replaces every listed ticket in one whole-collection write,
	// so a settlement lands on disk as a single save.
	UpdateMany(ctx context.Context, tickets []*models.Ticket) error
}

// BalanceRepository defines the interface for account balance operations
type BalanceRepository interface {
	Get(ctx context.Context, accountID string) (float64, error)
	Set(ctx context.Context, accountID string, amount float64) error
}

// PackageRepository defines the interface for package data operations
type PackageRepository interface {
	FindAll(ctx context.Context) ([]*models.Package, error)
	FindByID(ctx context.Context, id int) (*models.Package, error)
	Create(ctx context.Context, pkg *models.Package) error
	Update(ctx context.Context, pkg *models.Package) error
	Delete(ctx context.Context, id int) error
}

// BannerRepository defines the interface for banner data operations
type BannerRepository interface {
	FindAll(ctx context.Context) ([]*models.Banner, error)
}
