package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/stylequiz-backend/internal/lead"
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

func (r *repository) CreateLead(ctx context.Context, data lead.Lead) error {
	query := `
		INSERT INTO leads (id, name, phone, email, quiz_id)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
	`

	logging.LogSQLQuery(r.logger, query)

	_, err := r.client.Exec(ctx, query, data.ID, data.Name, data.Phone, data.Email, data.QuizID)

	return err
}

func (r *repository) CreateSubscriber(ctx context.Context, email string) error {
	query := `
		INSERT INTO subscribers (email)
		VALUES ($1)
		ON CONFLICT (email) DO NOTHING
	`

	logging.LogSQLQuery(r.logger, query)

	_, err := r.client.Exec(ctx, query, email)

	return err
}
