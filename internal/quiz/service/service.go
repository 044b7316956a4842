package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xw1nchester/stylequiz-backend/internal/apperror"
	"github.com/xw1nchester/stylequiz-backend/internal/brand"
	"github.com/xw1nchester/stylequiz-backend/internal/lib/text"
	"github.com/xw1nchester/stylequiz-backend/internal/quiz"
	"github.com/xw1nchester/stylequiz-backend/internal/quiz/db"
	"github.com/xw1nchester/stylequiz-backend/pkg/transactor"
	"github.com/xw1nchester/stylequiz-backend/pkg/utils"
	"go.uber.org/zap"
)

// maxSelections caps the combined count of catalog references and custom
// names per quiz session.
const maxSelections = 3

const (
	minCustomNameLength = 2
	maxCustomNameLength = 50
)

var (
	ErrQuotaExceeded     = apperror.NewAppError("no more than 3 brands can be selected")
	ErrUnknownBrand      = apperror.NewAppError("unknown or inactive brand reference")
	ErrInvalidCustomName = apperror.NewAppError("custom brand name must contain 2-50 meaningful characters")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockquizservice
type Repository interface {
	CreateSession(ctx context.Context, id string) error
	UpsertAnswer(ctx context.Context, answer quiz.Answer) error
	UpsertSelection(ctx context.Context, quizID string, autoPick bool) error
	DeleteSelectionItems(ctx context.Context, quizID string) error
	InsertSelectionItems(ctx context.Context, quizID string, items []quiz.SelectionItem) error
	GetSelection(ctx context.Context, quizID string) (*quiz.BrandSelection, error)
}

type BrandCatalog interface {
	Resolve(id string) (*brand.Brand, bool)
}

type service struct {
	repository   Repository
	brandCatalog BrandCatalog
	txManager    transactor.Manager
	logger       *zap.Logger
}

func New(
	repository Repository,
	brandCatalog BrandCatalog,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:   repository,
		brandCatalog: brandCatalog,
		txManager:    txManager,
		logger:       logger,
	}
}

func (s *service) StartSession(ctx context.Context) (string, error) {
	id := uuid.NewString()

	if err := s.repository.CreateSession(ctx, id); err != nil {
		s.logger.Error("unexpected error when creating quiz session", zap.Error(err))
		return "", err
	}

	return id, nil
}

func (s *service) SaveAnswer(ctx context.Context, answer quiz.Answer) error {
	if err := s.repository.UpsertAnswer(ctx, answer); err != nil {
		s.logger.Error("unexpected error when saving quiz answer", zap.Error(err))
		return err
	}

	return nil
}

// SaveBrandSelection validates and stores a selection, replacing any prior
// state for the session wholesale. Validation is all-or-nothing: the first
// failure rejects the whole save and nothing is written.
func (s *service) SaveBrandSelection(ctx context.Context, quizID string, selection quiz.BrandSelection) (*quiz.BrandSelection, error) {
	if selection.AutoPick {
		saved := quiz.EmptySelection()
		saved.AutoPick = true

		if err := s.replaceSelection(ctx, quizID, saved, nil); err != nil {
			return nil, err
		}

		return &saved, nil
	}

	brandIDs := utils.RemoveDuplicates(selection.FavoriteBrandIDs)

	if len(brandIDs)+len(selection.CustomBrandNames) > maxSelections {
		return nil, ErrQuotaExceeded
	}

	// references are re-checked against the live catalog on every save
	for _, id := range brandIDs {
		if _, ok := s.brandCatalog.Resolve(id); !ok {
			return nil, ErrUnknownBrand
		}
	}

	customNames := make([]string, 0, len(selection.CustomBrandNames))
	for _, name := range selection.CustomBrandNames {
		trimmed := strings.TrimSpace(name)

		length := utf8.RuneCountInString(trimmed)
		if length < minCustomNameLength || length > maxCustomNameLength || !text.HasMeaningfulContent(trimmed) {
			return nil, ErrInvalidCustomName
		}

		customNames = append(customNames, trimmed)
	}

	saved := quiz.BrandSelection{
		FavoriteBrandIDs: brandIDs,
		CustomBrandNames: customNames,
	}

	items := make([]quiz.SelectionItem, 0, len(brandIDs)+len(customNames))
	for _, id := range brandIDs {
		items = append(items, quiz.SelectionItem{Position: len(items), BrandID: id})
	}
	for _, name := range customNames {
		items = append(items, quiz.SelectionItem{Position: len(items), CustomName: name})
	}

	if err := s.replaceSelection(ctx, quizID, saved, items); err != nil {
		return nil, err
	}

	return &saved, nil
}

func (s *service) replaceSelection(ctx context.Context, quizID string, selection quiz.BrandSelection, items []quiz.SelectionItem) error {
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repository.UpsertSelection(ctx, quizID, selection.AutoPick); err != nil {
			return err
		}

		if err := s.repository.DeleteSelectionItems(ctx, quizID); err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		return s.repository.InsertSelectionItems(ctx, quizID, items)
	})
	if err != nil {
		s.logger.Error("unexpected error when replacing brand selection", zap.Error(err))
	}

	return err
}

// GetBrandSelection returns the stored selection, or the default empty state
// when the session has not answered yet. Unknown ids are not an error.
func (s *service) GetBrandSelection(ctx context.Context, quizID string) (*quiz.BrandSelection, error) {
	selection, err := s.repository.GetSelection(ctx, quizID)
	if err != nil {
		if errors.Is(err, db.ErrSelectionNotFound) {
			empty := quiz.EmptySelection()
			return &empty, nil
		}

		s.logger.Error("unexpected error when fetching brand selection", zap.Error(err))

		return nil, err
	}

	return selection, nil
}
