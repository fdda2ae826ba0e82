package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulsport/okulsport-backend/internal/app/models"
)

// RegisteredSchoolRepository reads the pre-imported Istanbul school
// directory used by the public form selectors.
type RegisteredSchoolRepository struct {
	db *pgxpool.Pool
}

// NewRegisteredSchoolRepository creates a new directory repository
func NewRegisteredSchoolRepository(db *pgxpool.Pool) *RegisteredSchoolRepository {
	return &RegisteredSchoolRepository{
		db: db,
	}
}

// Districts lists the distinct districts of one side
func (r *RegisteredSchoolRepository) Districts(ctx context.Context, side models.Side) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT district FROM registered_schools WHERE side = $1 ORDER BY district`, side)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var districts []string
	for rows.Next() {
		var district string
		if err := rows.Scan(&district); err != nil {
			return nil, err
		}
		districts = append(districts, district)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return districts, nil
}

// SchoolNames lists the directory school names of one district
func (r *RegisteredSchoolRepository) SchoolNames(ctx context.Context, district string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name FROM registered_schools WHERE district = $1 ORDER BY name`, district)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
