package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ianishdubey/FitZoneBack/internal/models"
	"github.com/ianishdubey/FitZoneBack/internal/repository"
)

// membershipWindow is a fixed policy: every membership runs 30 days from
// creation, regardless of plan.
const membershipWindow = 30 * 24 * time.Hour

type MembershipService struct {
	db *pgxpool.Pool
}

func NewMembershipService(db *pgxpool.Pool) *MembershipService {
	return &MembershipService{db: db}
}

// CreateMembership creates the membership record and overwrites the user's
// membership tier in one transaction. Payment status starts as pending and
// is never advanced here; there is no payment confirmation gate.
func (s *MembershipService) CreateMembership(
	ctx context.Context,
	userID int64,
	planType string,
	amount float64,
) (*models.Membership, error) {
	now := time.Now().UTC()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txMembershipRepo := repository.NewMembershipRepository(tx)
	txUserRepo := repository.NewUserRepository(tx)

	membership, err := txMembershipRepo.Create(ctx, repository.CreateMembershipInput{
		UserID:    userID,
		PlanType:  planType,
		StartDate: now,
		EndDate:   now.Add(membershipWindow),
		Amount:    amount,
	})
	if err != nil {
		return nil, err
	}

	if err := txUserRepo.SetMembershipType(ctx, userID, planType); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return membership, nil
}
