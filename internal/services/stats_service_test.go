package services

import (
	"context"
	"testing"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsEmpty(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.stats.GetStats(context.Background(), models.DefaultAccountID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalDraws)
	assert.Zero(t, stats.TotalTickets)
	assert.Zero(t, stats.Revenue)
	assert.Zero(t, stats.Profit)
	assert.Equal(t, 1500.0, stats.CurrentBalance)
}

func TestGetStatsAggregates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	big := env.mustCreateDraw(t, "Big Loto #1", models.DrawTypeBig)
	express := env.mustCreateDraw(t, "Express Loto #1", models.DrawTypeExpress)

	_, err := env.packages.CreatePackage(ctx, CreatePackageInput{
		Name:     "VIP package",
		Category: models.PackageCategoryBig,
		Price:    200,
	})
	require.NoError(t, err)

	// One big ticket (10) and one winning express ticket (5)
	_, err = env.tickets.BuyTicket(ctx, models.DefaultAccountID, big.ID, []int{10, 11, 12, 13, 14, 15, 16, 17})
	require.NoError(t, err)
	_, err = env.tickets.BuyTicket(ctx, models.DefaultAccountID, express.ID, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	_, err = env.draws.ConductDraw(ctx, express.ID)
	require.NoError(t, err)

	stats, err := env.stats.GetStats(ctx, models.DefaultAccountID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalDraws)
	assert.Equal(t, 1, stats.ActiveDraws)
	assert.Equal(t, 1, stats.CompletedDraws)
	assert.Equal(t, 1, stats.BigDraws)
	assert.Equal(t, 1, stats.ExpressDraws)
	assert.Equal(t, 1, stats.TotalPackages)
	assert.Equal(t, 2, stats.TotalTickets)
	assert.Equal(t, 1, stats.WinningTickets)
	assert.Equal(t, 1, stats.PendingTickets)
	assert.Equal(t, 15, stats.Revenue)
	assert.Equal(t, 500000, stats.TotalPrizes)
	assert.Equal(t, 15-500000, stats.Profit)
	assert.Equal(t, 1485.0, stats.CurrentBalance)
}
