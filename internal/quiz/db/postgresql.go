package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/stylequiz-backend/internal/logging"
	"github.com/xw1nchester/stylequiz-backend/internal/quiz"
	pgtx "github.com/xw1nchester/stylequiz-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

var ErrSelectionNotFound = errors.New("brand selection not found")

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

func (r *repository) CreateSession(ctx context.Context, id string) error {
	query := `INSERT INTO quiz_sessions (id) VALUES ($1)`

	logging.LogSQLQuery(r.logger, query)

	_, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id)

	return err
}

func (r *repository) UpsertAnswer(ctx context.Context, answer quiz.Answer) error {
	query := `
		INSERT INTO quiz_answers (quiz_id, step, payload, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (quiz_id, step)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
	`

	logging.LogSQLQuery(r.logger, query)

	_, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, answer.QuizID, answer.Step, answer.Payload)

	return err
}

func (r *repository) UpsertSelection(ctx context.Context, quizID string, autoPick bool) error {
	query := `
		INSERT INTO quiz_brand_selections (quiz_id, auto_pick, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (quiz_id)
		DO UPDATE SET auto_pick = EXCLUDED.auto_pick, updated_at = now()
	`

	logging.LogSQLQuery(r.logger, query)

	_, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, quizID, autoPick)

	return err
}

func (r *repository) DeleteSelectionItems(ctx context.Context, quizID string) error {
	query := `DELETE FROM quiz_selection_items WHERE quiz_id = $1`

	logging.LogSQLQuery(r.logger, query)

	_, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, quizID)

	return err
}

func (r *repository) InsertSelectionItems(ctx context.Context, quizID string, items []quiz.SelectionItem) error {
	query := `
		INSERT INTO quiz_selection_items (quiz_id, position, brand_id, custom_name)
		VALUES ($1, $2, $3, $4)
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	for _, item := range items {
		var brandID, customName *string
		if item.BrandID != "" {
			brandID = &item.BrandID
		}
		if item.CustomName != "" {
			customName = &item.CustomName
		}

		if _, err := executor.Exec(ctx, query, quizID, item.Position, brandID, customName); err != nil {
			return err
		}
	}

	return nil
}

func (r *repository) GetSelection(ctx context.Context, quizID string) (*quiz.BrandSelection, error) {
	headerQuery := `SELECT auto_pick FROM quiz_brand_selections WHERE quiz_id = $1`

	logging.LogSQLQuery(r.logger, headerQuery)

	executor := pgtx.GetExecutor(ctx, r.client)

	selection := quiz.EmptySelection()

	if err := executor.QueryRow(ctx, headerQuery, quizID).Scan(&selection.AutoPick); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSelectionNotFound
		}

		return nil, err
	}

	itemsQuery := `
		SELECT brand_id, custom_name
		FROM quiz_selection_items
		WHERE quiz_id = $1
		ORDER BY position
	`

	logging.LogSQLQuery(r.logger, itemsQuery)

	rows, err := executor.Query(ctx, itemsQuery, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var brandID, customName *string

		if err := rows.Scan(&brandID, &customName); err != nil {
			return nil, err
		}

		if brandID != nil {
			selection.FavoriteBrandIDs = append(selection.FavoriteBrandIDs, *brandID)
		} else if customName != nil {
			selection.CustomBrandNames = append(selection.CustomBrandNames, *customName)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &selection, nil
}
