package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okulsport/okulsport-backend/internal/app/models"
	"github.com/okulsport/okulsport-backend/internal/pkg/apperrors"
)

// OkulRepository reads the pre-imported national school directory
type OkulRepository struct {
	db *pgxpool.Pool
}

// NewOkulRepository creates a new national directory repository
func NewOkulRepository(db *pgxpool.Pool) *OkulRepository {
	return &OkulRepository{
		db: db,
	}
}

// ExistsTx checks inside the caller's transaction that a directory entry
// exists before a national application references it.
func (r *OkulRepository) ExistsTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM okullar WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking directory school: %w", err)
	}
	return exists, nil
}

// GetByID retrieves one directory entry
func (r *OkulRepository) GetByID(ctx context.Context, id int64) (*models.Okul, error) {
	var okul models.Okul
	err := r.db.QueryRow(ctx,
		`SELECT id, name, city, district FROM okullar WHERE id = $1`, id).Scan(
		&okul.ID, &okul.Name, &okul.City, &okul.District)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOkulNotFound
		}
		return nil, fmt.Errorf("error retrieving directory school: %w", err)
	}

	return &okul, nil
}

// Search finds directory entries by name fragment, optionally narrowed to
// a city. Matching is case-insensitive; results are capped by limit.
func (r *OkulRepository) Search(ctx context.Context, query, city string, limit int) ([]*models.Okul, error) {
	sql := `
		SELECT id, name, city, district
		FROM okullar
		WHERE name ILIKE '%' || $1 || '%'
		  AND ($2 = '' OR city = $2)
		ORDER BY name
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, sql, query, city, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var okullar []*models.Okul
	for rows.Next() {
		var okul models.Okul
		if err := rows.Scan(&okul.ID, &okul.Name, &okul.City, &okul.District); err != nil {
			return nil, err
		}
		okullar = append(okullar, &okul)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return okullar, nil
}
