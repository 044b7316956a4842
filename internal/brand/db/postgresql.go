package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/stylequiz-backend/internal/brand"
	"github.com/xw1nchester/stylequiz-backend/internal/logging"
	"go.uber.org/zap"
)

type repository struct {
	client *pgxpool.Pool
	logger *zap.Logger
}

func New(client *pgxpool.Pool, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func (r *repository) GetActiveBrands(ctx context.Context) ([]brand.Brand, error) {
	query := `
		SELECT id, name, aliases, tier, popularity, COALESCE(logo_url, ''), is_active
		FROM brands
		WHERE is_active
		ORDER BY seq
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []brand.Brand

	for rows.Next() {
		var b brand.Brand

		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Aliases,
			&b.Tier,
			&b.Popularity,
			&b.LogoURL,
			&b.IsActive,
		); err != nil {
			return nil, err
		}

		brands = append(brands, b)
	}

	return brands, rows.Err()
}
