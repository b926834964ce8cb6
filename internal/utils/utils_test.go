package utils

import (
	"testing"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTicketPrice(t *testing.T) {
	assert.Equal(t, 10, TicketPrice(models.DrawTypeBig))
	assert.Equal(t, 5, TicketPrice(models.DrawTypeExpress))
	// Unknown types fall back to the big price
	assert.Equal(t, 10, TicketPrice(models.DrawType("mystery")))
}

func TestPackagePrice(t *testing.T) {
	assert.Equal(t, 50, PackagePrice(models.PackageTypeAll))
	assert.Equal(t, 30, PackagePrice(models.PackageTypeBigOnly))
	assert.Equal(t, 20, PackagePrice(models.PackageTypeExpressOnly))
}

func TestCalculatePrize(t *testing.T) {
	tests := []struct {
		name     string
		matches  int
		drawType models.DrawType
		want     int
	}{
		{"big jackpot", 8, models.DrawTypeBig, 1000000},
		{"big seven", 7, models.DrawTypeBig, 50000},
		{"big six", 6, models.DrawTypeBig, 5000},
		{"big five", 5, models.DrawTypeBig, 500},
		{"big four", 4, models.DrawTypeBig, 50},
		{"big three pays nothing", 3, models.DrawTypeBig, 0},
		{"big zero", 0, models.DrawTypeBig, 0},
		{"express jackpot", 6, models.DrawTypeExpress, 500000},
		{"express five", 5, models.DrawTypeExpress, 25000},
		{"express four", 4, models.DrawTypeExpress, 2500},
		{"express three", 3, models.DrawTypeExpress, 250},
		{"express two pays nothing", 2, models.DrawTypeExpress, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculatePrize(tt.matches, tt.drawType))
		})
	}
}

func TestCountMatches(t *testing.T) {
	winning := []int{1, 2, 3, 4, 5, 6}
	assert.Equal(t, 6, CountMatches([]int{1, 2, 3, 4, 5, 6}, winning))
	assert.Equal(t, 3, CountMatches([]int{1, 2, 3, 7, 8, 9}, winning))
	assert.Equal(t, 0, CountMatches([]int{10, 11, 12}, winning))
	assert.Equal(t, 0, CountMatches(nil, winning))
}

func TestValidateTicketNumbers(t *testing.T) {
	tests := []struct {
		name     string
		numbers  []int
		drawType models.DrawType
		want     bool
	}{
		{"valid express", []int{1, 2, 3, 4, 5, 6}, models.DrawTypeExpress, true},
		{"valid big", []int{1, 5, 10, 15, 20, 25, 30, 36}, models.DrawTypeBig, true},
		{"too few for big", []int{1, 2, 3, 4, 5, 6}, models.DrawTypeBig, false},
		{"too many for express", []int{1, 2, 3, 4, 5, 6, 7}, models.DrawTypeExpress, false},
		{"zero out of range", []int{0, 2, 3, 4, 5, 6}, models.DrawTypeExpress, false},
		{"above max", []int{1, 2, 3, 4, 5, 37}, models.DrawTypeExpress, false},
		{"duplicate", []int{1, 1, 3, 4, 5, 6}, models.DrawTypeExpress, false},
		{"empty", []int{}, models.DrawTypeExpress, false},
		{"nil", nil, models.DrawTypeExpress, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateTicketNumbers(tt.numbers, tt.drawType))
		})
	}
}

func TestGenerateNumbers(t *testing.T) {
	for i := 0; i < 50; i++ {
		numbers := GenerateNumbers(8)
		assert.Len(t, numbers, 8)

		seen := make(map[int]bool)
		for j, n := range numbers {
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, MaxLotteryNumber)
			assert.False(t, seen[n], "duplicate number %d", n)
			seen[n] = true
			if j > 0 {
				assert.Greater(t, n, numbers[j-1], "numbers must be sorted ascending")
			}
		}
	}
}

func TestGeneratedNumbersAreAlwaysValidTickets(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.True(t, ValidateTicketNumbers(GenerateNumbers(8), models.DrawTypeBig))
		assert.True(t, ValidateTicketNumbers(GenerateNumbers(6), models.DrawTypeExpress))
	}
}
