package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/stylequiz-backend/internal/logging"
	"github.com/xw1nchester/stylequiz-backend/internal/slot"
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

func (r *repository) UpsertSlot(ctx context.Context, key string, url string) error {
	query := `
		INSERT INTO image_slots (key, url, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET url = EXCLUDED.url, updated_at = NOW()
	`

	logging.LogSQLQuery(r.logger, query)

	_, err := r.client.Exec(ctx, query, key, url)

	return err
}

func (r *repository) GetSlots(ctx context.Context) ([]slot.Slot, error) {
	query := `SELECT key, url FROM image_slots ORDER BY key`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]slot.Slot, 0)

	for rows.Next() {
		var s slot.Slot
		if err := rows.Scan(&s.Key, &s.URL); err != nil {
			return nil, err
		}

		slots = append(slots, s)
	}

	return slots, rows.Err()
}
