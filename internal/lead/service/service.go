package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xw1nchester/stylequiz-backend/internal/lead"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockleadservice
type Repository interface {
	CreateLead(ctx context.Context, data lead.Lead) error
	CreateSubscriber(ctx context.Context, email string) error
}

// Notifier is the fire-and-forget chat integration: send errors are logged
// and swallowed, never surfaced to the caller.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type service struct {
	repository Repository
	notifier   Notifier
	logger     *zap.Logger
}

func New(repository Repository, notifier Notifier, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		notifier:   notifier,
		logger:     logger,
	}
}

func (s *service) CreateLead(ctx context.Context, data lead.Lead) (*lead.Lead, error) {
	data.ID = uuid.NewString()

	if err := s.repository.CreateLead(ctx, data); err != nil {
		s.logger.Error("unexpected error when creating lead", zap.Error(err))
		return nil, err
	}

	s.notify(fmt.Sprintf("New lead: %s, %s", data.Name, data.Phone))

	return &data, nil
}

func (s *service) Subscribe(ctx context.Context, email string) error {
	if err := s.repository.CreateSubscriber(ctx, email); err != nil {
		s.logger.Error("unexpected error when creating subscriber", zap.Error(err))
		return err
	}

	s.notify(fmt.Sprintf("New subscriber: %s", email))

	return nil
}

// notify dispatches the chat message in the background; the request does not
// wait for the bot API and never fails because of it.
func (s *service) notify(text string) {
	go func() {
		if err := s.notifier.Send(context.Background(), text); err != nil {
			s.logger.Warn("failed to send notification", zap.Error(err))
		}
	}()
}
