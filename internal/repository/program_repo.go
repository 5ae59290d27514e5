package repository

import (
	"context"

	"github.com/ianishdubey/FitZoneBack/internal/models"
)

type ProgramRepository struct {
	db DBTX
}

func NewProgramRepository(db DBTX) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) List(ctx context.Context) ([]models.Program, error) {
	query := `
		SELECT id, title, description, duration, level, price, instructor, schedule,
			benefits, equipment, created_at, updated_at
		FROM programs
		ORDER BY title, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := make([]models.Program, 0)
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(
			&program.ID,
			&program.Title,
			&program.Description,
			&program.Duration,
			&program.Level,
			&program.Price,
			&program.Instructor,
			&program.Schedule,
			&program.Benefits,
			&program.Equipment,
			&program.CreatedAt,
			&program.UpdatedAt,
		); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return programs, nil
}
