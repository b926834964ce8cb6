package services

import (
	"context"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/repositories"
	"github.com/digitalloto/loto-backend/internal/utils"
)

// Compile-time check to ensure StatsServiceImpl implements StatsService
var _ StatsService = (*StatsServiceImpl)(nil)

// StatsServiceImpl computes the admin statistics aggregation
type StatsServiceImpl struct {
	drawRepo    repositories.DrawRepository
	ticketRepo  repositories.TicketRepository
	packageRepo repositories.PackageRepository
	wallet      WalletService
}

// NewStatsService creates a new StatsServiceImpl
func NewStatsService(
	drawRepo repositories.DrawRepository,
	ticketRepo repositories.TicketRepository,
	packageRepo repositories.PackageRepository,
	wallet WalletService,
) *StatsServiceImpl {
	return &StatsServiceImpl{
		drawRepo:    drawRepo,
		ticketRepo:  ticketRepo,
		packageRepo: packageRepo,
		wallet:      wallet,
	}
}

// GetStats aggregates draws, tickets, packages and the balance. Pure reads,
// no mutation. Revenue prices every ticket ever sold by its draw's type;
// profit is revenue minus prizes accrued on tickets.
func (s *StatsServiceImpl) GetStats(ctx context.Context, accountID string) (*models.Stats, error) {
	draws, err := s.drawRepo.FindAll(ctx)
	if err != nil {
		return nil, newError(CodeLoadFailed, "failed to load draws")
	}
	tickets, err := s.ticketRepo.FindAll(ctx)
	if err != nil {
		return nil, newError(CodeLoadFailed, "failed to load tickets")
	}
	packages, err := s.packageRepo.FindAll(ctx)
	if err != nil {
		return nil, newError(CodeLoadFailed, "failed to load packages")
	}
	balance, err := s.wallet.GetBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}

	stats := &models.Stats{
		TotalDraws:     len(draws),
		TotalPackages:  len(packages),
		TotalTickets:   len(tickets),
		CurrentBalance: balance,
	}

	drawTypes := make(map[int]models.DrawType, len(draws))
	for _, draw := range draws {
		drawTypes[draw.ID] = draw.Type
		if draw.Completed {
			stats.CompletedDraws++
		} else {
			stats.ActiveDraws++
		}
		if draw.Type == models.DrawTypeBig {
			stats.BigDraws++
		} else {
			stats.ExpressDraws++
		}
	}

	for _, ticket := range tickets {
		if ticket.Prize > 0 {
			stats.WinningTickets++
		}
		if ticket.Status == models.TicketStatusPending {
			stats.PendingTickets++
		}
		if drawType, ok := drawTypes[ticket.DrawID]; ok {
			stats.Revenue += utils.TicketPrice(drawType)
		}
		stats.TotalPrizes += ticket.Prize
	}
	stats.Profit = stats.Revenue - stats.TotalPrizes

	return stats, nil
}
