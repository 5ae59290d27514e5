package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ianishdubey/FitZoneBack/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const userColumns = `id, first_name, last_name, email, password_hash, phone,
		membership_type, join_date, is_active, purchased_programs, profile,
		created_at, updated_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, membership_type, join_date, is_active, purchased_programs, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Phone,
	).Scan(
		&user.ID,
		&user.MembershipType,
		&user.JoinDate,
		&user.IsActive,
		&user.PurchasedPrograms,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// UpdateUserInput carries the allow-listed updatable fields. Anything not
// here (email, password hash, membership type) cannot be changed through a
// profile update.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Profile   *models.Profile
}

func (r *UserRepository) Update(ctx context.Context, id int64, input UpdateUserInput) (*models.User, error) {
	setClauses := []string{"updated_at = now()"}
	args := []any{id}

	appendSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.FirstName != nil {
		appendSet("first_name", *input.FirstName)
	}
	if input.LastName != nil {
		appendSet("last_name", *input.LastName)
	}
	if input.Phone != nil {
		appendSet("phone", *input.Phone)
	}
	if input.Profile != nil {
		appendSet("profile", input.Profile)
	}

	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(setClauses, ", "),
		userColumns,
	)
	return r.scanUser(r.db.QueryRow(ctx, query, args...))
}

// AddPurchasedProgram appends the program identifier to the user's purchased
// set in a single statement, so concurrent purchases cannot lose updates and
// a repeated purchase is a no-op.
func (r *UserRepository) AddPurchasedProgram(ctx context.Context, userID int64, programID string) error {
	query := `
		UPDATE users
		SET purchased_programs = array_append(purchased_programs, $2), updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(purchased_programs))
	`
	_, err := r.db.Exec(ctx, query, userID, programID)
	return err
}

func (r *UserRepository) GetPurchasedPrograms(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT purchased_programs FROM users WHERE id = $1`
	var programs []string
	if err := r.db.QueryRow(ctx, query, userID).Scan(&programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// SetMembershipType overwrites the user's tier. Last write wins; no tier
// history is kept.
func (r *UserRepository) SetMembershipType(ctx context.Context, userID int64, planType string) error {
	query := `UPDATE users SET membership_type = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, userID, planType)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.MembershipType,
		&user.JoinDate,
		&user.IsActive,
		&user.PurchasedPrograms,
		&user.Profile,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
