package repository

import (
	"context"

	"github.com/ianishdubey/FitZoneBack/internal/models"
)

type CreateInquiryInput struct {
	Reference string
	Name      string
	Email     string
	Phone     *string
	Message   string
	Type      string
}

type InquiryRepository struct {
	db DBTX
}

func NewInquiryRepository(db DBTX) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(ctx context.Context, input CreateInquiryInput) (*models.Inquiry, error) {
	query := `
		INSERT INTO inquiries (reference, name, email, phone, message, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at, updated_at
	`

	inquiry := models.Inquiry{
		Reference: input.Reference,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		Type:      input.Type,
	}
	err := r.db.QueryRow(ctx, query,
		input.Reference, input.Name, input.Email, input.Phone, input.Message, input.Type,
	).Scan(
		&inquiry.ID,
		&inquiry.Status,
		&inquiry.CreatedAt,
		&inquiry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &inquiry, nil
}
