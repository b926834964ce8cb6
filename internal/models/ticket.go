package models

import "time"

// TicketStatus represents the lifecycle state of a ticket
type TicketStatus string

const (
	TicketStatusPending   TicketStatus = "pending"
	TicketStatusCompleted TicketStatus = "completed"
)

// Ticket represents one purchased entry tied to exactly one draw.
// Matches and Prize are meaningful only after the owning draw settles.
type Ticket struct {
	ID        int          `json:"id"`
	DrawID    int          `json:"draw_id"`
	Numbers   []int        `json:"numbers"`
	Status    TicketStatus `json:"status"`
	Matches   int          `json:"matches"`
	Prize     int          `json:"prize"`
	DrawDate  *time.Time   `json:"draw_date,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt *time.Time   `json:"updated_at,omitempty"`
}

// TicketPurchase is the outcome of buying a single ticket
type TicketPurchase struct {
	Ticket     *Ticket `json:"ticket"`
	NewBalance float64 `json:"new_balance"`
}

// TicketWin is the per-ticket settlement summary returned by a conducted draw
type TicketWin struct {
	TicketID int `json:"ticket_id"`
	Matches  int `json:"matches"`
	Prize    int `json:"prize"`
}

// DrawResult is the outcome of conducting a draw
type DrawResult struct {
	DrawID         int         `json:"draw_id"`
	WinningNumbers []int       `json:"winning_numbers"`
	Winners        []TicketWin `json:"winners"`
	TotalPrize     int         `json:"total_prize"`
}
