package services

import (
	"context"

	"github.com/digitalloto/loto-backend/internal/models"
)

// NumberGenerator samples the given count of distinct lottery numbers. It is
// injected so draws and package purchases stay deterministic under test.
type NumberGenerator func(count int) []int

// DrawService defines the interface for draw-related operations
type DrawService interface {
	// GetAllDraws retrieves every draw
	GetAllDraws(ctx context.Context) ([]*models.Draw, error)

	// GetDrawByID retrieves a draw by its ID
	GetDrawByID(ctx context.Context, id int) (*models.Draw, error)

	// CreateDraw adds a new open draw
	CreateDraw(ctx context.Context, input CreateDrawInput) (*models.Draw, error)

	// UpdateDraw updates the editable fields of a draw
	UpdateDraw(ctx context.Context, id int, input UpdateDrawInput) (*models.Draw, error)

	// DeleteDraw removes a draw; refused while tickets reference it
	DeleteDraw(ctx context.Context, id int) error

	// ConductDraw generates winning numbers, settles pending tickets and
	// completes the draw
	ConductDraw(ctx context.Context, id int) (*models.DrawResult, error)
}

// TicketService defines the interface for ticket-related operations
type TicketService interface {
	// GetTickets retrieves tickets, optionally filtered by draw and status
	GetTickets(ctx context.Context, drawID *int, status models.TicketStatus) ([]*models.Ticket, error)

	// BuyTicket debits the account and creates a pending ticket
	BuyTicket(ctx context.Context, accountID string, drawID int, numbers []int) (*models.TicketPurchase, error)

	// UpdateTicketNumbers replaces a ticket's numbers while its draw is open
	UpdateTicketNumbers(ctx context.Context, ticketID int, numbers []int) (*models.Ticket, error)
}

// PackageService defines the interface for package-related operations
type PackageService interface {
	// GetPackages retrieves every package offer
	GetPackages(ctx context.Context) ([]*models.Package, error)

	// CreatePackage adds a new package offer
	CreatePackage(ctx context.Context, input CreatePackageInput) (*models.Package, error)

	// UpdatePackage updates an existing package offer
	UpdatePackage(ctx context.Context, id int, input UpdatePackageInput) (*models.Package, error)

	// DeletePackage removes a package offer
	DeletePackage(ctx context.Context, id int) error

	// BuyPackage debits the flat package price and creates one
	// randomly-numbered ticket per eligible draw
	BuyPackage(ctx context.Context, accountID string, packageType models.PackageType) (*models.PackagePurchase, error)
}

// WalletService defines the interface for balance operations
type WalletService interface {
	// GetBalance retrieves the current balance of an account
	GetBalance(ctx context.Context, accountID string) (float64, error)

	// SetBalance overwrites the balance of an account; negative amounts are
	// rejected
	SetBalance(ctx context.Context, accountID string, amount float64) error

	// Debit atomically checks funds and subtracts amount, returning the new
	// balance
	Debit(ctx context.Context, accountID string, amount float64) (float64, error)
}

// StatsService defines the interface for the admin statistics aggregation
type StatsService interface {
	// GetStats computes the read-only aggregation over draws, tickets,
	// packages and the balance
	GetStats(ctx context.Context, accountID string) (*models.Stats, error)
}

// BannerService defines the interface for banner listings
type BannerService interface {
	// GetBanners retrieves the active banners
	GetBanners(ctx context.Context) ([]*models.Banner, error)
}
