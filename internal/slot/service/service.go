package service

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/xw1nchester/stylequiz-backend/internal/apperror"
	"github.com/xw1nchester/stylequiz-backend/internal/config"
	"github.com/xw1nchester/stylequiz-backend/internal/slot"
	"go.uber.org/zap"
)

var (
	ErrInvalidSlotKey = apperror.NewAppError("slot key must contain only lowercase letters, digits, hyphens and underscores")

	slotKeyRegexp = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockservice
type Repository interface {
	UpsertSlot(ctx context.Context, key string, url string) error
	GetSlots(ctx context.Context) ([]slot.Slot, error)
}

type ObjectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName string, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type service struct {
	repository  Repository
	objectStore ObjectStore
	cfg         config.Minio
	logger      *zap.Logger
}

func New(
	repository Repository,
	objectStore ObjectStore,
	cfg config.Minio,
	logger *zap.Logger,
) *service {
	return &service{
		repository:  repository,
		objectStore: objectStore,
		cfg:         cfg,
		logger:      logger,
	}
}

// GetSlots returns every configured slot keyed by its placement name.
func (s *service) GetSlots(ctx context.Context) (map[string]string, error) {
	slots, err := s.repository.GetSlots(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching slots", zap.Error(err))
		return nil, err
	}

	byKey := make(map[string]string, len(slots))
	for _, sl := range slots {
		byKey[sl.Key] = sl.URL
	}

	return byKey, nil
}

// UploadImage stores the image under a fresh object name, binds the slot key
// to its public URL and returns the updated slot.
func (s *service) UploadImage(
	ctx context.Context,
	key string,
	reader io.Reader,
	size int64,
	contentType string,
	fileExtension string,
) (*slot.Slot, error) {
	if !slotKeyRegexp.MatchString(key) {
		return nil, ErrInvalidSlotKey
	}

	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	objectName := uuid.NewString()
	if fileExtension != "" {
		objectName = fmt.Sprintf("%s.%s", objectName, fileExtension)
	}

	_, err := s.objectStore.PutObject(
		ctx,
		s.cfg.Bucket,
		objectName,
		reader,
		size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		s.logger.Error("error uploading slot image", zap.Error(err))
		return nil, err
	}

	url := fmt.Sprintf(
		"%s/%s/%s",
		strings.TrimRight(s.cfg.PublicURL, "/"),
		s.cfg.Bucket,
		objectName,
	)

	if err := s.repository.UpsertSlot(ctx, key, url); err != nil {
		s.logger.Error("unexpected error when saving slot", zap.Error(err))
		return nil, err
	}

	return &slot.Slot{Key: key, URL: url}, nil
}

func (s *service) ensureBucket(ctx context.Context) error {
	exists, err := s.objectStore.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		s.logger.Error("error checking if bucket exists", zap.Error(err))
		return err
	}

	if !exists {
		if err := s.objectStore.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			s.logger.Error("error creating bucket", zap.Error(err))
			return err
		}
	}

	return nil
}
