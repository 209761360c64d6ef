package testhelpers

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockTagCache is a mock implementation of the tag list cache
type MockTagCache struct {
	mock.Mock
}

func (m *MockTagCache) GetTags(ctx context.Context) ([]models.Tag, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]models.Tag), args.Bool(1), args.Error(2)
}

func (m *MockTagCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTagCache) SetTags(ctx context.Context, tags []models.Tag, generation int64) error {
	args := m.Called(ctx, tags, generation)
	return args.Error(0)
}

func (m *MockTagCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockObjectStore is a mock implementation of the S3 upload and presign
// calls used for recipe images
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *MockObjectStore) GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiration)
	return args.String(0), args.Error(1)
}
