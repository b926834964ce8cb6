package services

import (
	"context"
	"time"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/repositories"
	"github.com/digitalloto/loto-backend/internal/utils"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure DrawServiceImpl implements DrawService
var _ DrawService = (*DrawServiceImpl)(nil)

// DrawServiceImpl handles draw lifecycle and settlement
type DrawServiceImpl struct {
	drawRepo   repositories.DrawRepository
	ticketRepo repositories.TicketRepository
	generate   NumberGenerator
}

// NewDrawService creates a new DrawServiceImpl. A nil generator falls back to
// the uniform sampler.
func NewDrawService(
	drawRepo repositories.DrawRepository,
	ticketRepo repositories.TicketRepository,
	generate NumberGenerator,
) *DrawServiceImpl {
	if generate == nil {
		generate = utils.GenerateNumbers
	}
	return &DrawServiceImpl{
		drawRepo:   drawRepo,
		ticketRepo: ticketRepo,
		generate:   generate,
	}
}

// CreateDrawInput carries the fields accepted when adding a draw
type CreateDrawInput struct {
	Title        string
	Category     models.DrawType
	Cost         int
	Image        string
	TimeLeft     string
	NumbersCount int
	ButtonText   string
}

// UpdateDrawInput carries the editable draw fields; nil means "leave as is"
type UpdateDrawInput struct {
	Title        *string
	Category     *models.DrawType
	Cost         *int
	Image        *string
	TimeLeft     *string
	NumbersCount *int
	ButtonText   *string
}

// GetAllDraws retrieves every draw
func (s *DrawServiceImpl) GetAllDraws(ctx context.Context) ([]*models.Draw, error) {
	return s.drawRepo.FindAll(ctx)
}

// GetDrawByID retrieves a draw by its ID
func (s *DrawServiceImpl) GetDrawByID(ctx context.Context, id int) (*models.Draw, error) {
	draw, err := s.drawRepo.FindByID(ctx, id)
	if err != nil {
		return nil, newError(CodeDrawNotFound, "draw not found")
	}
	return draw, nil
}

// CreateDraw adds a new open draw. Display defaults and the required numbers
// count are resolved here, once, so stored records never carry missing fields.
func (s *DrawServiceImpl) CreateDraw(ctx context.Context, input CreateDrawInput) (*models.Draw, error) {
	if !input.Category.Valid() {
		return nil, newError(CodeInvalidCategory, "unknown draw category")
	}

	draw := &models.Draw{
		Title:        input.Title,
		Type:         input.Category,
		Cost:         input.Cost,
		Image:        input.Image,
		TimeLeft:     input.TimeLeft,
		NumbersCount: input.NumbersCount,
		ButtonText:   input.ButtonText,
		Currency:     "COINS",
		Completed:    false,
		Numbers:      []int{},
	}
	if draw.NumbersCount == 0 {
		draw.NumbersCount = input.Category.RequiredNumbers()
	}
	if draw.ButtonText == "" {
		draw.ButtonText = "Play now!"
	}

	if err := s.drawRepo.Create(ctx, draw); err != nil {
		slog.Error("Failed to save new draw", "error", err)
		return nil, newError(CodeSaveFailed, "failed to save draw")
	}
	slog.Info("Draw created", "drawId", draw.ID, "type", draw.Type)
	return draw, nil
}

// UpdateDraw updates the editable fields of a draw
func (s *DrawServiceImpl) UpdateDraw(ctx context.Context, id int, input UpdateDrawInput) (*models.Draw, error) {
	draw, err := s.drawRepo.FindByID(ctx, id)
	if err != nil {
		return nil, newError(CodeDrawNotFound, "draw not found")
	}

	if input.Title != nil {
		draw.Title = *input.Title
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, newError(CodeInvalidCategory, "unknown draw category")
		}
		draw.Type = *input.Category
		draw.NumbersCount = input.Category.RequiredNumbers()
	}
	if input.Cost != nil {
		draw.Cost = *input.Cost
	}
	if input.Image != nil {
		draw.Image = *input.Image
	}
	if input.TimeLeft != nil {
		draw.TimeLeft = *input.TimeLeft
	}
	if input.NumbersCount != nil {
		draw.NumbersCount = *input.NumbersCount
	}
	if input.ButtonText != nil {
		draw.ButtonText = *input.ButtonText
	}
	now := time.Now()
	draw.UpdatedAt = &now

	if err := s.drawRepo.Update(ctx, draw); err != nil {
		slog.Error("Failed to save updated draw", "drawId", id, "error", err)
		return nil, newError(CodeSaveFailed, "failed to save draw")
	}
	slog.Info("Draw updated", "drawId", id)
	return draw, nil
}

// DeleteDraw removes a draw. A draw that has tickets is never deleted.
func (s *DrawServiceImpl) DeleteDraw(ctx context.Context, id int) error {
	tickets, err := s.ticketRepo.FindByDrawID(ctx, id)
	if err != nil {
		return newError(CodeLoadFailed, "failed to check draw tickets")
	}
	if len(tickets) > 0 {
		return newError(CodeDrawHasTickets, "draw has purchased tickets")
	}
	if err := s.drawRepo.Delete(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return newError(CodeDrawNotFound, "draw not found")
		}
		slog.Error("Failed to delete draw", "drawId", id, "error", err)
		return newError(CodeSaveFailed, "failed to delete draw")
	}
	slog.Info("Draw deleted", "drawId", id)
	return nil
}

// ConductDraw generates winning numbers, settles every pending ticket of the
// draw and then marks the draw completed. Tickets are persisted before the
// draw flips so a failed ticket save leaves everything still pending and the
// draw retryable; prize money accrues on tickets only and is deliberately not
// credited back to the balance.
func (s *DrawServiceImpl) ConductDraw(ctx context.Context, id int) (*models.DrawResult, error) {
	draw, err := s.drawRepo.FindByID(ctx, id)
	if err != nil {
		return nil, newError(CodeDrawNotFound, "draw not found")
	}
	if draw.Completed {
		return nil, newError(CodeDrawCompleted, "draw already completed")
	}

	winningNumbers := s.generate(draw.Type.RequiredNumbers())

	tickets, err := s.ticketRepo.FindByDrawID(ctx, id)
	if err != nil {
		return nil, newError(CodeLoadFailed, "failed to load draw tickets")
	}

	now := time.Now()
	settled := make([]*models.Ticket, 0, len(tickets))
	winners := []models.TicketWin{}
	totalPrize := 0
	for _, ticket := range tickets {
		if ticket.Status != models.TicketStatusPending {
			continue
		}
		matches := utils.CountMatches(ticket.Numbers, winningNumbers)
		prize := utils.CalculatePrize(matches, draw.Type)

		ticket.Status = models.TicketStatusCompleted
		ticket.Matches = matches
		ticket.Prize = prize
		drawDate := now
		ticket.DrawDate = &drawDate
		settled = append(settled, ticket)

		if prize > 0 {
			winners = append(winners, models.TicketWin{TicketID: ticket.ID, Matches: matches, Prize: prize})
			totalPrize += prize
		}
	}

	if err := s.ticketRepo.UpdateMany(ctx, settled); err != nil {
		slog.Error("Failed to persist settled tickets", "drawId", id, "error", err)
		return nil, newError(CodeSaveFailed, "failed to settle tickets")
	}

	draw.Completed = true
	draw.Numbers = winningNumbers
	draw.CompletedAt = &now
	if err := s.drawRepo.Update(ctx, draw); err != nil {
		// Tickets are already settled against these numbers; the draw record
		// is the only thing left behind.
		slog.Error("CRITICAL: tickets settled but draw not marked completed", "drawId", id, "error", err)
		return nil, newError(CodeSaveFailed, "failed to complete draw")
	}

	slog.Info("Draw conducted", "drawId", id, "numbers", winningNumbers,
		"settled", len(settled), "winners", len(winners), "totalPrize", totalPrize)

	return &models.DrawResult{
		DrawID:         id,
		WinningNumbers: winningNumbers,
		Winners:        winners,
		TotalPrize:     totalPrize,
	}, nil
}
