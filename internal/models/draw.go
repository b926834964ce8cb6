package models

import "time"

// DrawType represents the kind of lottery a draw belongs to
type DrawType string

const (
	DrawTypeBig     DrawType = "big"
	DrawTypeExpress DrawType = "express"
)

// RequiredNumbers returns how many numbers a ticket for this draw type must carry
func (t DrawType) RequiredNumbers() int {
	if t == DrawTypeBig {
		return 8
	}
	return 6
}

// Valid reports whether the draw type is one of the supported kinds
func (t DrawType) Valid() bool {
	return t == DrawTypeBig || t == DrawTypeExpress
}

// Draw represents a single lottery event. Numbers stays empty until the draw
// is conducted; the invariant is that Numbers is non-empty iff Completed.
type Draw struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Type         DrawType   `json:"type"`
	Cost         int        `json:"cost"`
	Image        string     `json:"image,omitempty"`
	TimeLeft     string     `json:"time_left,omitempty"`
	NumbersCount int        `json:"numbers_count"`
	ButtonText   string     `json:"button_text,omitempty"`
	Currency     string     `json:"currency"`
	Completed    bool       `json:"completed"`
	Numbers      []int      `json:"numbers"`
	TicketsCount int        `json:"tickets_count"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
