package models

// Stats is a read-only aggregation over draws, tickets, packages and the
// balance. Revenue counts every ticket ever sold at its draw-type price;
// profit is revenue minus prizes accrued on tickets.
type Stats struct {
	TotalDraws     int     `json:"total_draws"`
	ActiveDraws    int     `json:"active_draws"`
	CompletedDraws int     `json:"completed_draws"`
	BigDraws       int     `json:"big_draws"`
	ExpressDraws   int     `json:"express_draws"`
	TotalPackages  int     `json:"total_packages"`
	TotalTickets   int     `json:"total_tickets"`
	WinningTickets int     `json:"winning_tickets"`
	PendingTickets int     `json:"pending_tickets"`
	Revenue        int     `json:"revenue"`
	TotalPrizes    int     `json:"total_prizes"`
	Profit         int     `json:"profit"`
	CurrentBalance float64 `json:"current_balance"`
}
