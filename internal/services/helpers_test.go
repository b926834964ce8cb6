package services

import (
	"context"
	"errors"
	"testing"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/repositories"
	"github.com/digitalloto/loto-backend/internal/repositories/jsonstore"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

// brokenTicketRepo delegates to a real repository but fails the listed
// operations, for exercising the compensation paths
type brokenTicketRepo struct {
	repositories.TicketRepository
	failCreate  bool
	failFindAll bool
}

func (r *brokenTicketRepo) Create(ctx context.Context, ticket *models.Ticket) error {
	if r.failCreate {
		return errDiskFull
	}
	return r.TicketRepository.Create(ctx, ticket)
}

func (r *brokenTicketRepo) FindAll(ctx context.Context) ([]*models.Ticket, error) {
	if r.failFindAll {
		return nil, errDiskFull
	}
	return r.TicketRepository.FindAll(ctx)
}

// brokenBalanceRepo fails every write
type brokenBalanceRepo struct {
	repositories.BalanceRepository
}

func (r *brokenBalanceRepo) Set(ctx context.Context, accountID string, amount float64) error {
	return errDiskFull
}

// testEnv wires every service against a throwaway flat-file store
type testEnv struct {
	drawRepo    repositories.DrawRepository
	ticketRepo  repositories.TicketRepository
	balanceRepo repositories.BalanceRepository
	packageRepo repositories.PackageRepository

	wallet   *WalletServiceImpl
	draws    *DrawServiceImpl
	tickets  *TicketServiceImpl
	packages *PackageServiceImpl
	stats    *StatsServiceImpl
}

// fixedNumbers returns a generator that always produces 1..count
func fixedNumbers(count int) []int {
	numbers := make([]int, count)
	for i := range numbers {
		numbers[i] = i + 1
	}
	return numbers
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := jsonstore.NewStore(t.TempDir())

	env := &testEnv{
		drawRepo:    jsonstore.NewDrawRepository(store),
		ticketRepo:  jsonstore.NewTicketRepository(store),
		balanceRepo: jsonstore.NewBalanceRepository(store, 1500),
		packageRepo: jsonstore.NewPackageRepository(store),
	}
	env.wallet = NewWalletService(env.balanceRepo)
	env.draws = NewDrawService(env.drawRepo, env.ticketRepo, fixedNumbers)
	env.tickets = NewTicketService(env.ticketRepo, env.drawRepo, env.wallet)
	env.packages = NewPackageService(env.packageRepo, env.drawRepo, env.ticketRepo, env.wallet, fixedNumbers)
	env.stats = NewStatsService(env.drawRepo, env.ticketRepo, env.packageRepo, env.wallet)
	return env
}

func (e *testEnv) mustCreateDraw(t *testing.T, title string, category models.DrawType) *models.Draw {
	t.Helper()
	draw, err := e.draws.CreateDraw(context.Background(), CreateDrawInput{Title: title, Category: category})
	require.NoError(t, err)
	return draw
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	svcErr, ok := AsServiceError(err)
	require.True(t, ok, "expected a service error, got %v", err)
	require.Equal(t, code, svcErr.Code)
}
