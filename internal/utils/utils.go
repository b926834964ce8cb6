package utils

import (
	"math/rand"
	"sort"

	"github.com/digitalloto/loto-backend/internal/models"
)

// MaxLotteryNumber is the upper bound (inclusive) for every lottery number
const MaxLotteryNumber = 36

// ticketPrices maps a draw type to the cost of one ticket
var ticketPrices = map[models.DrawType]int{
	models.DrawTypeBig:     10,
	models.DrawTypeExpress: 5,
}

// packagePrices maps a package type to its flat price. The price does not
// depend on how many draws the package ends up covering.
var packagePrices = map[models.PackageType]int{
	models.PackageTypeAll:         50,
	models.PackageTypeBigOnly:     30,
	models.PackageTypeExpressOnly: 20,
}

// prizeTable maps draw type and match count to the prize amount
var prizeTable = map[models.DrawType]map[int]int{
	models.DrawTypeBig: {
		8: 1000000,
		7: 50000,
		6: 5000,
		5: 500,
		4: 50,
	},
	models.DrawTypeExpress: {
		6: 500000,
		5: 25000,
		4: 2500,
		3: 250,
	},
}

// TicketPrice returns the price of one ticket for the given draw type
func TicketPrice(drawType models.DrawType) int {
	if price, ok := ticketPrices[drawType]; ok {
		return price
	}
	return ticketPrices[models.DrawTypeBig]
}

// PackagePrice returns the flat price of the given package type
func PackagePrice(packageType models.PackageType) int {
	return packagePrices[packageType]
}

// CalculatePrize returns the prize for a match count, 0 when the match count
// has no entry in the prize table
func CalculatePrize(matches int, drawType models.DrawType) int {
	return prizeTable[drawType][matches]
}

// CountMatches returns how many of the ticket's numbers appear among the
// winning numbers
func CountMatches(ticketNumbers, winningNumbers []int) int {
	drawn := make(map[int]bool, len(winningNumbers))
	for _, n := range winningNumbers {
		drawn[n] = true
	}
	matches := 0
	for _, n := range ticketNumbers {
		if drawn[n] {
			matches++
		}
	}
	return matches
}

// ValidateTicketNumbers reports whether the numbers form a valid ticket for
// the draw type: exact required count, every number in [1, MaxLotteryNumber],
// no duplicates.
func ValidateTicketNumbers(numbers []int, drawType models.DrawType) bool {
	if len(numbers) != drawType.RequiredNumbers() {
		return false
	}
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < 1 || n > MaxLotteryNumber {
			return false
		}
		if seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}

// GenerateNumbers samples count distinct numbers from [1, MaxLotteryNumber]
// without replacement and returns them sorted ascending
func GenerateNumbers(count int) []int {
	pool := rand.Perm(MaxLotteryNumber)
	numbers := make([]int, count)
	for i := 0; i < count; i++ {
		numbers[i] = pool[i] + 1
	}
	sort.Ints(numbers)
	return numbers
}
