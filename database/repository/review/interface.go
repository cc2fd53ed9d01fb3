package reviewRepo

import (
	"context"

	"quickmed/models"
)

// ReviewRepository defines data access for testimonials.
type ReviewRepository interface {
	// Upsert creates or replaces the review for an email.
	Upsert(ctx context.Context, email string, review *models.Review) error
	// List retrieves reviews newest first; limit <= 0 means no limit.
	List(ctx context.Context, limit int64) ([]models.Review, error)
}
