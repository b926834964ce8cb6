package jsonstore

import (
	"context"
	"time"

	"github.com/digitalloto/loto-backend/internal/models"
	"github.com/digitalloto/loto-backend/internal/repositories"
)

const ticketsCollection = "tickets"

type ticketsFile struct {
	Tickets []*models.Ticket `json:"tickets"`
}

// TicketRepository implements repositories.TicketRepository on top of the store
type TicketRepository struct {
	store *Store
}

// NewTicketRepository creates a new TicketRepository
func NewTicketRepository(store *Store) repositories.TicketRepository {
	return &TicketRepository{store: store}
}

// FindAll returns every ticket
func (r *TicketRepository) FindAll(ctx context.Context) ([]*models.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file ticketsFile
	r.store.load(ticketsCollection, &file)
	if file.Tickets == nil {
		file.Tickets = []*models.Ticket{}
	}
	return file.Tickets, nil
}

// FindByID finds a ticket by ID
func (r *TicketRepository) FindByID(ctx context.Context, id int) (*models.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file ticketsFile
	r.store.load(ticketsCollection, &file)
	for _, ticket := range file.Tickets {
		if ticket.ID == id {
			return ticket, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindByDrawID returns every ticket bought for the given draw
func (r *TicketRepository) FindByDrawID(ctx context.Context, drawID int) ([]*models.Ticket, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file ticketsFile
	r.store.load(ticketsCollection, &file)
	tickets := []*models.Ticket{}
	for _, ticket := range file.Tickets {
		if ticket.DrawID == drawID {
			tickets = append(tickets, ticket)
		}
	}
	return tickets, nil
}

// Create appends a new ticket, assigning the next free ID
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file ticketsFile
	r.store.load(ticketsCollection, &file)

	ids := make([]int, 0, len(file.Tickets))
	for _, t := range file.Tickets {
		ids = append(ids, t.ID)
	}
	ticket.ID = NextID(ids)
	ticket.CreatedAt = time.Now()

	file.Tickets = append(file.Tickets, ticket)
	return r.store.save(ticketsCollection, &file)
}

// Update replaces the stored ticket with the same ID and stamps updated_at
func (r *TicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var file ticketsFile
	r.store.load(ticketsCollection, &file)
	for i, t := range file.Tickets {
		if t.ID == ticket.ID {
			now := time.Now()
			ticket.UpdatedAt = &now
			file.Tickets[i] = ticket
			return r.store.save(ticketsCollection, &file)
		}
	}
	return repositories.ErrNotFound
}

// UpdateMany replaces every listed ticket in one whole-collection write
func (r *TicketRepository) UpdateMany(ctx context.Context, tickets []*models.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	updated := make(map[int]*models.Ticket, len(tickets))
	for _, t := range tickets {
		updated[t.ID] = t
	}

	var file ticketsFile
	r.store.load(ticketsCollection, &file)
	for i, t := range file.Tickets {
		if repl, ok := updated[t.ID]; ok {
			file.Tickets[i] = repl
		}
	}
	return r.store.save(ticketsCollection, &file)
}
