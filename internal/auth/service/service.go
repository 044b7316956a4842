package service

import (
	"context"

	"github.com/xw1nchester/stylequiz-backend/internal/apperror"
	"github.com/xw1nchester/stylequiz-backend/internal/config"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockservice
type TokenManager interface {
	GenerateToken() (string, error)
}

type PasswordManager interface {
	CompareHashAndPassword(hashedPassword []byte, password []byte) error
}

type service struct {
	adminConfig     config.Admin
	tokenManager    TokenManager
	passwordManager PasswordManager
	logger          *zap.Logger
}

func New(
	adminConfig config.Admin,
	tokenManager TokenManager,
	passwordManager PasswordManager,
	logger *zap.Logger,
) *service {
	return &service{
		adminConfig:     adminConfig,
		tokenManager:    tokenManager,
		passwordManager: passwordManager,
		logger:          logger,
	}
}

func (s *service) Login(ctx context.Context, password string) (string, error) {
	if err := s.passwordManager.CompareHashAndPassword(
		[]byte(s.adminConfig.PasswordHash),
		[]byte(password),
	); err != nil {
		return "", apperror.ErrUnauthorized
	}

	token, err := s.tokenManager.GenerateToken()
	if err != nil {
		s.logger.Error("unexpected error when generating admin token", zap.Error(err))
		return "", err
	}

	return token, nil
}
