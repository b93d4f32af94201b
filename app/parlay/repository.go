package parlay

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stakehouse/parlay/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new ticket repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// CreateTicket persists a new parlay ticket
func (r *repository) CreateTicket(ctx context.Context, ticket *models.ParlayTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

// GetTicketByID returns a ticket by its id
func (r *repository) GetTicketByID(ctx context.Context, id uuid.UUID) (*models.ParlayTicket, error) {
	var ticket models.ParlayTicket
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// GetTicketsBySession returns the tickets recorded for a session,
// newest first
func (r *repository) GetTicketsBySession(ctx context.Context, sessionID uuid.UUID) ([]models.ParlayTicket, error) {
	var tickets []models.ParlayTicket
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("placed_at DESC").
		Find(&tickets).Error
	return tickets, err
}
