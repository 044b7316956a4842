package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/stylequiz-backend/internal/brand"
	"github.com/xw1nchester/stylequiz-backend/internal/quiz"
	"github.com/xw1nchester/stylequiz-backend/internal/quiz/db"
	mockquizservice "github.com/xw1nchester/stylequiz-backend/internal/quiz/service/mocks"
	mocktransactor "github.com/xw1nchester/stylequiz-backend/pkg/transactor/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const quizID = "2b8f9c4e-54a1-4c5e-9f3a-8d2e6b7a1c0d"

var errUnexpected = errors.New("unexpected error")

type mocks struct {
	repository *mockquizservice.MockRepository
	catalog    *mockquizservice.MockBrandCatalog
	txManager  *mocktransactor.MockManager
}

func newTestService(t *testing.T) (*service, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := mocks{
		repository: mockquizservice.NewMockRepository(ctrl),
		catalog:    mockquizservice.NewMockBrandCatalog(ctrl),
		txManager:  mocktransactor.NewMockManager(ctrl),
	}

	return New(m.repository, m.catalog, m.txManager, zap.NewNop()), m
}

func expectTransaction(m mocks) {
	m.txManager.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func resolvable(id string) *brand.Brand {
	return &brand.Brand{ID: id, IsActive: true}
}

func TestSaveBrandSelectionAutoPick(t *testing.T) {
	svc, m := newTestService(t)

	expectTransaction(m)
	m.repository.EXPECT().UpsertSelection(gomock.Any(), quizID, true).Return(nil)
	m.repository.EXPECT().DeleteSelectionItems(gomock.Any(), quizID).Return(nil)

	saved, err := svc.SaveBrandSelection(context.Background(), quizID, quiz.BrandSelection{
		// explicit choices are ignored once auto-pick is on
		FavoriteBrandIDs: []string{"zara"},
		CustomBrandNames: []string{"Local"},
		AutoPick:         true,
	})

	require.NoError(t, err)
	assert.Equal(t, &quiz.BrandSelection{
		FavoriteBrandIDs: []string{},
		CustomBrandNames: []string{},
		AutoPick:         true,
	}, saved)
}

func TestSaveBrandSelectionQuotaExceededAfterDedup(t *testing.T) {
	svc, _ := newTestService(t)

	// duplicates collapse to 2 ids, plus 2 names = 4 > 3
	_, err := svc.SaveBrandSelection(context.Background(), quizID, quiz.BrandSelection{
		FavoriteBrandIDs: []string{"zara", "cos", "zara"},
		CustomBrandNames: []string{"One", "Two"},
	})

	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestSaveBrandSelectionUnknownBrand(t *testing.T) {
	svc, m := newTestService(t)

	m.catalog.EXPECT().Resolve("zara").Return(resolvable("zara"), true)
	m.catalog.EXPECT().Resolve("ghost").Return(nil, false)

	_, err := svc.SaveBrandSelection(context.Background(), quizID, quiz.BrandSelection{
		FavoriteBrandIDs: []string{"zara", "ghost"},
	})

	assert.ErrorIs(t, err, ErrUnknownBrand)
}

func TestSaveBrandSelectionInvalidCustomName(t *testing.T) {
	testTable := []struct {
		name       string
		customName string
	}{
		{name: "too short", customName: "x"},
		{name: "whitespace only", customName: "   "},
		{name: "too long", customName: strings.Repeat("a", 51)},
		{name: "emoji only", customName: "🔥🔥"},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(t)

			_, err := svc.SaveBrandSelection(context.Background(), quizID, quiz.BrandSelection{
				CustomBrandNames: []string{tc.customName},
			})

			assert.ErrorIs(t, err, ErrInvalidCustomName)
		})
	}
}

func TestSaveBrandSelectionSuccess(t *testing.T) {
	svc, m := newTestService(t)

	m.catalog.EXPECT().Resolve("zara").Return(resolvable("zara"), true)
	m.catalog.EXPECT().Resolve("cos").Return(resolvable("cos"), true)

	expectTransaction(m)
	m.repository.EXPECT().UpsertSelection(gomock.Any(), quizID, false).Return(nil)
	m.repository.EXPECT().DeleteSelectionItems(gomock.Any(), quizID).Return(nil)
	m.repository.EXPECT().InsertSelectionItems(gomock.Any(), quizID, []quiz.SelectionItem{
		{Position: 0, BrandID: "zara"},
		{Position: 1, BrandID: "cos"},
		{Position: 2, CustomName: "Local"},
	}).Return(nil)

	saved, err := svc.SaveBrandSelection(context.Background(), quizID, quiz.BrandSelection{
		FavoriteBrandIDs: []string{"zara", "cos"},
		CustomBrandNames: []string{"  Local  "},
	})

	require.NoError(t, err)
	assert.Equal(t, &quiz.BrandSelection{
		FavoriteBrandIDs: []string{"zara", "cos"},
		CustomBrandNames: []string{"Local"},
	}, saved)
}

func TestSaveBrandSelectionStorageFailure(t *testing.T) {
	svc, m := newTestService(t)

	m.catalog.EXPECT().Resolve("zara").Return(resolvable("zara"), true)

	expectTransaction(m)
	m.repository.EXPECT().UpsertSelection(gomock.Any(), quizID, false).Return(errUnexpected)

	_, err := svc.SaveBrandSelection(context.Background(), quizID, quiz.BrandSelection{
		FavoriteBrandIDs: []string{"zara"},
	})

	assert.ErrorIs(t, err, errUnexpected)
}

func TestGetBrandSelectionDefaultsWhenMissing(t *testing.T) {
	svc, m := newTestService(t)

	m.repository.EXPECT().GetSelection(gomock.Any(), quizID).Return(nil, db.ErrSelectionNotFound)

	selection, err := svc.GetBrandSelection(context.Background(), quizID)

	require.NoError(t, err)
	assert.Equal(t, &quiz.BrandSelection{
		FavoriteBrandIDs: []string{},
		CustomBrandNames: []string{},
	}, selection)
}

func TestGetBrandSelectionPassthrough(t *testing.T) {
	svc, m := newTestService(t)

	stored := &quiz.BrandSelection{
		FavoriteBrandIDs: []string{"zara"},
		CustomBrandNames: []string{"Local"},
	}

	m.repository.EXPECT().GetSelection(gomock.Any(), quizID).Return(stored, nil)

	selection, err := svc.GetBrandSelection(context.Background(), quizID)

	require.NoError(t, err)
	assert.Equal(t, stored, selection)
}

func TestGetBrandSelectionStorageFailure(t *testing.T) {
	svc, m := newTestService(t)

	m.repository.EXPECT().GetSelection(gomock.Any(), quizID).Return(nil, errUnexpected)

	_, err := svc.GetBrandSelection(context.Background(), quizID)

	assert.ErrorIs(t, err, errUnexpected)
}

func TestStartSession(t *testing.T) {
	svc, m := newTestService(t)

	var createdID string
	m.repository.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string) error {
			createdID = id
			return nil
		})

	id, err := svc.StartSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, createdID, id)
	assert.NoError(t, uuid.Validate(id))
}

func TestSaveAnswer(t *testing.T) {
	svc, m := newTestService(t)

	answer := quiz.Answer{QuizID: quizID, Step: "style", Payload: []byte(`{"vibe":"casual"}`)}

	m.repository.EXPECT().UpsertAnswer(gomock.Any(), answer).Return(nil)

	assert.NoError(t, svc.SaveAnswer(context.Background(), answer))
}
