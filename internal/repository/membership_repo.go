package repository

import (
	"context"
	"time"

	"github.com/ianishdubey/FitZoneBack/internal/models"
)

type CreateMembershipInput struct {
	UserID    int64
	PlanType  string
	StartDate time.Time
	EndDate   time.Time
	Amount    float64
}

type MembershipRepository struct {
	db DBTX
}

func NewMembershipRepository(db DBTX) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Create(ctx context.Context, input CreateMembershipInput) (*models.Membership, error) {
	query := `
		INSERT INTO memberships (user_id, plan_type, start_date, end_date, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, payment_status, created_at, updated_at
	`

	membership := models.Membership{
		UserID:    input.UserID,
		PlanType:  input.PlanType,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Amount:    input.Amount,
	}
	err := r.db.QueryRow(ctx, query,
		input.UserID, input.PlanType, input.StartDate, input.EndDate, input.Amount,
	).Scan(
		&membership.ID,
		&membership.IsActive,
		&membership.PaymentStatus,
		&membership.CreatedAt,
		&membership.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &membership, nil
}
