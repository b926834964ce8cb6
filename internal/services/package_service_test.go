package services

import (
	"context"
	"testing"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyPackageAllCoversEveryOpenDraw(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	big := env.mustCreateDraw(t, "Big Loto #1", models.DrawTypeBig)
	express := env.mustCreateDraw(t, "Express Loto #1", models.DrawTypeExpress)
	completed := env.mustCreateDraw(t, "Express Loto #2", models.DrawTypeExpress)
	_, err := env.draws.ConductDraw(ctx, completed.ID)
	require.NoError(t, err)

	purchase, err := env.packages.BuyPackage(ctx, models.DefaultAccountID, models.PackageTypeAll)
	require.NoError(t, err)
	assert.Equal(t, 1450.0, purchase.NewBalance)
	require.Len(t, purchase.Tickets, 2)

	covered := map[int]int{}
	for _, ticket := range purchase.Tickets {
		covered[ticket.DrawID] = len(ticket.Numbers)
		assert.Equal(t, models.TicketStatusPending, ticket.Status)
	}
	assert.Equal(t, 8, covered[big.ID])
	assert.Equal(t, 6, covered[express.ID])
	assert.NotContains(t, covered, completed.ID)
}

func TestBuyPackageBigOnlyFiltersByType(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	big := env.mustCreateDraw(t, "Big Loto #1", models.DrawTypeBig)
	env.mustCreateDraw(t, "Express Loto #1", models.DrawTypeExpress)

	purchase, err := env.packages.BuyPackage(ctx, models.DefaultAccountID, models.PackageTypeBigOnly)
	require.NoError(t, err)
	assert.Equal(t, 1470.0, purchase.NewBalance)
	require.Len(t, purchase.Tickets, 1)
	assert.Equal(t, big.ID, purchase.Tickets[0].DrawID)
}

func TestBuyPackageExpressOnlyFiltersByType(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateDraw(t, "Big Loto #1", models.DrawTypeBig)
	express := env.mustCreateDraw(t, "Express Loto #1", models.DrawTypeExpress)

	purchase, err := env.packages.BuyPackage(ctx, models.DefaultAccountID, models.PackageTypeExpressOnly)
	require.NoError(t, err)
	assert.Equal(t, 1480.0, purchase.NewBalance)
	require.Len(t, purchase.Tickets, 1)
	assert.Equal(t, express.ID, purchase.Tickets[0].DrawID)
}

func TestBuyPackageUnknownType(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.packages.BuyPackage(context.Background(), models.DefaultAccountID, models.PackageType("mega"))
	requireCode(t, err, CodeInvalidPackage)
}

func TestBuyPackageNoDrawsAvailable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateDraw(t, "Express Loto #1", models.DrawTypeExpress)

	_, err := env.packages.BuyPackage(ctx, models.DefaultAccountID, models.PackageTypeBigOnly)
	requireCode(t, err, CodeNoDrawsAvailable)

	// Refused before any money moved
	balance, err := env.wallet.GetBalance(ctx, models.DefaultAccountID)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, balance)
}

func TestBuyPackageInsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateDraw(t, "Express Loto #1", models.DrawTypeExpress)

	require.NoError(t, env.wallet.SetBalance(ctx, models.DefaultAccountID, 19))

	_, err := env.packages.BuyPackage(ctx, models.DefaultAccountID, models.PackageTypeExpressOnly)
	requireCode(t, err, CodeInsufficientFunds)

	balance, err := env.wallet.GetBalance(ctx, models.DefaultAccountID)
	require.NoError(t, err)
	assert.Equal(t, 19.0, balance)
}

func TestBuyPackageNoTicketsCreatedRestoresBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateDraw(t, "Express Loto #1", models.DrawTypeExpress)

	broken := NewPackageService(env.packageRepo, env.drawRepo,
		&brokenTicketRepo{TicketRepository: env.ticketRepo, failCreate: true}, env.wallet, fixedNumbers)

	_, err := broken.BuyPackage(ctx, models.DefaultAccountID, models.PackageTypeExpressOnly)
	requireCode(t, err, CodeTicketsCreateError)

	// The debit was rolled back and no tickets exist
	balance, err := env.wallet.GetBalance(ctx, models.DefaultAccountID)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, balance)
	tickets, err := env.tickets.GetTickets(ctx, nil, "")
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestPackageCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	pkg, err := env.packages.CreatePackage(ctx, CreatePackageInput{
		Name:     "VIP package",
		Category: models.PackageCategoryBig,
		Price:    200,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, pkg.ID)
	assert.Equal(t, "COINS", pkg.Currency)

	price := 150
	updated, err := env.packages.UpdatePackage(ctx, pkg.ID, UpdatePackageInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 150, updated.Price)
	assert.Equal(t, "VIP package", updated.Name)

	bad := models.PackageCategory("mystery")
	_, err = env.packages.UpdatePackage(ctx, pkg.ID, UpdatePackageInput{Category: &bad})
	requireCode(t, err, CodeInvalidCategory)

	require.NoError(t, env.packages.DeletePackage(ctx, pkg.ID))
	err = env.packages.DeletePackage(ctx, pkg.ID)
	requireCode(t, err, CodePackageNotFound)
}

func TestCreatePackageRejectsUnknownCategory(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.packages.CreatePackage(context.Background(), CreatePackageInput{
		Name:     "Mystery",
		Category: models.PackageCategory("mystery"),
	})
	requireCode(t, err, CodeInvalidCategory)
}
