package services

import (
	"context"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/repositories"
	"github.com/digitalloto/loto-backend/internal/utils"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure PackageServiceImpl implements PackageService
var _ PackageService = (*PackageServiceImpl)(nil)

// PackageServiceImpl handles package offers and bulk ticket purchases
type PackageServiceImpl struct {
	packageRepo repositories.PackageRepository
	drawRepo    repositories.DrawRepository
	ticketRepo  repositories.TicketRepository
	wallet      WalletService
	generate    NumberGenerator
}

// NewPackageService creates a new PackageServiceImpl. A nil generator falls
// back to the uniform sampler.
func NewPackageService(
	packageRepo repositories.PackageRepository,
	drawRepo repositories.DrawRepository,
	ticketRepo repositories.TicketRepository,
	wallet WalletService,
	generate NumberGenerator,
) *PackageServiceImpl {
	if generate == nil {
		generate = utils.GenerateNumbers
	}
	return &PackageServiceImpl{
		packageRepo: packageRepo,
		drawRepo:    drawRepo,
		ticketRepo:  ticketRepo,
		wallet:      wallet,
		generate:    generate,
	}
}

// CreatePackageInput carries the fields accepted when adding a package
type CreatePackageInput struct {
	Name     string
	Category models.PackageCategory
	Price    int
}

// UpdatePackageInput carries the editable package fields; nil means "leave as is"
type UpdatePackageInput struct {
	Name     *string
	Category *models.PackageCategory
	Price    *int
}

// GetPackages retrieves every package offer
func (s *PackageServiceImpl) GetPackages(ctx context.Context) ([]*models.Package, error) {
	return s.packageRepo.FindAll(ctx)
}

// CreatePackage adds a new package offer
func (s *PackageServiceImpl) CreatePackage(ctx context.Context, input CreatePackageInput) (*models.Package, error) {
	if !input.Category.Valid() {
		return nil, newError(CodeInvalidCategory, "unknown package category")
	}
	pkg := &models.Package{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Currency: "COINS",
	}
	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		slog.Error("Failed to save new package", "error", err)
		return nil, newError(CodeSaveFailed, "failed to save package")
	}
	slog.Info("Package created", "packageId", pkg.ID)
	return pkg, nil
}

// UpdatePackage updates an existing package offer
func (s *PackageServiceImpl) UpdatePackage(ctx context.Context, id int, input UpdatePackageInput) (*models.Package, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, newError(CodePackageNotFound, "package not found")
	}
	if input.Name != nil {
		pkg.Name = *input.Name
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, newError(CodeInvalidCategory, "unknown package category")
		}
		pkg.Category = *input.Category
	}
	if input.Price != nil {
		pkg.Price = *input.Price
	}
	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		slog.Error("Failed to save updated package", "packageId", id, "error", err)
		return nil, newError(CodeSaveFailed, "failed to save package")
	}
	slog.Info("Package updated", "packageId", id)
	return pkg, nil
}

// DeletePackage removes a package offer
func (s *PackageServiceImpl) DeletePackage(ctx context.Context, id int) error {
	if err := s.packageRepo.Delete(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return newError(CodePackageNotFound, "package not found")
		}
		slog.Error("Failed to delete package", "packageId", id, "error", err)
		return newError(CodeSaveFailed, "failed to delete package")
	}
	slog.Info("Package deleted", "packageId", id)
	return nil
}

// BuyPackage debits the flat package price once and creates one
// randomly-numbered ticket for every eligible (non-completed, category
// matching) draw. The price does not scale with the number of draws covered.
func (s *PackageServiceImpl) BuyPackage(ctx context.Context, accountID string, packageType models.PackageType) (*models.PackagePurchase, error) {
	if !packageType.Valid() {
		return nil, newError(CodeInvalidPackage, "unknown package type")
	}

	price := utils.PackagePrice(packageType)
	balance, err := s.wallet.GetBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if balance < float64(price) {
		return nil, newError(CodeInsufficientFunds, "insufficient funds")
	}

	draws, err := s.drawRepo.FindAll(ctx)
	if err != nil {
		return nil, newError(CodeLoadFailed, "failed to load draws")
	}
	targetDraws := []*models.Draw{}
	for _, draw := range draws {
		if draw.Completed {
			continue
		}
		switch packageType {
		case models.PackageTypeBigOnly:
			if draw.Type != models.DrawTypeBig {
				continue
			}
		case models.PackageTypeExpressOnly:
			if draw.Type != models.DrawTypeExpress {
				continue
			}
		}
		targetDraws = append(targetDraws, draw)
	}
	if len(targetDraws) == 0 {
		return nil, newError(CodeNoDrawsAvailable, "no draws available for this package")
	}

	newBalance, err := s.wallet.Debit(ctx, accountID, float64(price))
	if err != nil {
		return nil, err
	}

	createdTickets := []*models.Ticket{}
	for _, draw := range targetDraws {
		ticket := &models.Ticket{
			DrawID:  draw.ID,
			Numbers: s.generate(draw.Type.RequiredNumbers()),
			Status:  models.TicketStatusPending,
		}
		if err := s.ticketRepo.Create(ctx, ticket); err != nil {
			slog.Error("Failed to create package ticket", "drawId", draw.ID, "error", err)
			continue
		}
		createdTickets = append(createdTickets, ticket)

		draw.TicketsCount++
		if err := s.drawRepo.Update(ctx, draw); err != nil {
			slog.Warn("Failed to bump draw ticket count", "drawId", draw.ID, "error", err)
		}
	}
	if len(createdTickets) == 0 {
		slog.Error("No package tickets created, restoring balance", "packageType", packageType)
		if rerr := s.wallet.SetBalance(ctx, accountID, newBalance+float64(price)); rerr != nil {
			slog.Error("CRITICAL: failed to restore balance after failed package purchase",
				"account", accountID, "error", rerr)
		}
		return nil, newError(CodeTicketsCreateError, "failed to create package tickets")
	}

	slog.Info("Package purchased", "packageType", packageType, "tickets", len(createdTickets), "price", price)
	return &models.PackagePurchase{
		PackageType: packageType,
		Tickets:     createdTickets,
		NewBalance:  newBalance,
	}, nil
}
