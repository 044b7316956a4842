package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/stylequiz-backend/internal/lead"
	mockleadservice "github.com/xw1nchester/stylequiz-backend/internal/lead/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func awaitNotification(t *testing.T, notified <-chan string) string {
	t.Helper()

	select {
	case text := <-notified:
		return text
	case <-time.After(time.Second):
		t.Fatal("notification was not dispatched")
		return ""
	}
}

func expectNotification(notifier *mockleadservice.MockNotifier, err error) <-chan string {
	notified := make(chan string, 1)

	notifier.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, text string) error {
			notified <- text
			return err
		})

	return notified
}

func TestCreateLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockleadservice.NewMockRepository(ctrl)
	notifier := mockleadservice.NewMockNotifier(ctrl)

	var storedID string
	repo.EXPECT().
		CreateLead(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, data lead.Lead) error {
			storedID = data.ID
			return nil
		})

	notified := expectNotification(notifier, nil)

	svc := New(repo, notifier, zap.NewNop())

	created, err := svc.CreateLead(context.Background(), lead.Lead{Name: "Ann", Phone: "+79990001122"})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, storedID, created.ID)
	assert.Contains(t, awaitNotification(t, notified), "Ann")
}

func TestCreateLeadStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockleadservice.NewMockRepository(ctrl)
	notifier := mockleadservice.NewMockNotifier(ctrl)

	repo.EXPECT().CreateLead(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

	svc := New(repo, notifier, zap.NewNop())

	// no notification is sent when the write fails
	_, err := svc.CreateLead(context.Background(), lead.Lead{Name: "Ann", Phone: "+79990001122"})

	assert.Error(t, err)
}

func TestSubscribeSwallowsNotifierError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockleadservice.NewMockRepository(ctrl)
	notifier := mockleadservice.NewMockNotifier(ctrl)

	repo.EXPECT().CreateSubscriber(gomock.Any(), "ann@example.com").Return(nil)
	notified := expectNotification(notifier, errors.New("bot api down"))

	svc := New(repo, notifier, zap.NewNop())

	err := svc.Subscribe(context.Background(), "ann@example.com")

	require.NoError(t, err)
	assert.Contains(t, awaitNotification(t, notified), "ann@example.com")
}
