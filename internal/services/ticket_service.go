package services

import (
	"context"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/repositories"
	"github.com/digitalloto/loto-backend/internal/utils"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure TicketServiceImpl implements TicketService
var _ TicketService = (*TicketServiceImpl)(nil)

// TicketServiceImpl handles ticket purchase and mutation
type TicketServiceImpl struct {
	ticketRepo repositories.TicketRepository
	drawRepo   repositories.DrawRepository
	wallet     WalletService
}

// NewTicketService creates a new TicketServiceImpl
func NewTicketService(
	ticketRepo repositories.TicketRepository,
	drawRepo repositories.DrawRepository,
	wallet WalletService,
) *TicketServiceImpl {
	return &TicketServiceImpl{
		ticketRepo: ticketRepo,
		drawRepo:   drawRepo,
		wallet:     wallet,
	}
}

// GetTickets retrieves tickets, optionally filtered by draw and status
func (s *TicketServiceImpl) GetTickets(ctx context.Context, drawID *int, status models.TicketStatus) ([]*models.Ticket, error) {
	var tickets []*models.Ticket
	var err error
	if drawID != nil {
		tickets, err = s.ticketRepo.FindByDrawID(ctx, *drawID)
	} else {
		tickets, err = s.ticketRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, newError(CodeLoadFailed, "failed to load tickets")
	}
	if status == "" {
		return tickets, nil
	}
	filtered := []*models.Ticket{}
	for _, ticket := range tickets {
		if ticket.Status == status {
			filtered = append(filtered, ticket)
		}
	}
	return filtered, nil
}

// BuyTicket debits the ticket price and creates a pending ticket for the
// draw. The debit and the ticket write are two separate saves; when the
// ticket write fails the pre-debit balance is restored best-effort.
func (s *TicketServiceImpl) BuyTicket(ctx context.Context, accountID string, drawID int, numbers []int) (*models.TicketPurchase, error) {
	draw, err := s.drawRepo.FindByID(ctx, drawID)
	if err != nil {
		return nil, newError(CodeDrawNotFound, "draw not found")
	}
	if !utils.ValidateTicketNumbers(numbers, draw.Type) {
		return nil, newError(CodeInvalidNumbers, "invalid ticket numbers")
	}

	price := utils.TicketPrice(draw.Type)
	newBalance, err := s.wallet.Debit(ctx, accountID, float64(price))
	if err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		DrawID:  drawID,
		Numbers: numbers,
		Status:  models.TicketStatusPending,
		Matches: 0,
		Prize:   0,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		slog.Error("Failed to save ticket, restoring balance", "drawId", drawID, "error", err)
		if rerr := s.wallet.SetBalance(ctx, accountID, newBalance+float64(price)); rerr != nil {
			slog.Error("CRITICAL: failed to restore balance after failed ticket save",
				"account", accountID, "error", rerr)
		}
		return nil, newError(CodeTicketCreateError, "failed to create ticket")
	}

	draw.TicketsCount++
	if err := s.drawRepo.Update(ctx, draw); err != nil {
		slog.Warn("Failed to bump draw ticket count", "drawId", drawID, "error", err)
	}

	slog.Info("Ticket purchased", "ticketId", ticket.ID, "drawId", drawID, "price", price)
	return &models.TicketPurchase{Ticket: ticket, NewBalance: newBalance}, nil
}

// UpdateTicketNumbers replaces a ticket's numbers. Allowed only while the
// owning draw has not completed; numbers revalidate against the draw type.
func (s *TicketServiceImpl) UpdateTicketNumbers(ctx context.Context, ticketID int, numbers []int) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, newError(CodeTicketNotFound, "ticket not found")
	}
	draw, err := s.drawRepo.FindByID(ctx, ticket.DrawID)
	if err != nil {
		return nil, newError(CodeDrawNotFound, "draw not found")
	}
	if draw.Completed {
		return nil, newError(CodeDrawCompleted, "draw already completed")
	}
	if !utils.ValidateTicketNumbers(numbers, draw.Type) {
		return nil, newError(CodeInvalidNumbers, "invalid ticket numbers")
	}

	ticket.Numbers = numbers
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		slog.Error("Failed to save updated ticket", "ticketId", ticketID, "error", err)
		return nil, newError(CodeSaveFailed, "failed to save ticket")
	}
	slog.Info("Ticket numbers updated", "ticketId", ticketID)
	return ticket, nil
}
