package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pageza/foodgram/backend/config"
	"github.com/pageza/foodgram/backend/internal/models"
)

const (
	imageURLExpiry = 15 * time.Minute
	maxImageSize   = 10 << 20
)

var (
	ErrNotAnImage    = errors.New("uploaded file is not an image")
	ErrImageTooLarge = errors.New("uploaded image is too large")
)

// ObjectUploader is the part of the S3 client used to store images
type ObjectUploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// URLSigner issues time-limited download URLs for stored objects
type URLSigner interface {
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// ImageService stores recipe images in S3
type ImageService struct {
	uploader ObjectUploader
	signer   URLSigner
	bucket   string
}

var _ IImageService = (*ImageService)(nil)

// NewImageService creates an ImageService backed by the configured bucket
func NewImageService(s3Config *config.S3Config) *ImageService {
	return NewImageServiceWithStore(s3Config.Client, s3Config, s3Config.BucketName)
}

// NewImageServiceWithStore creates an ImageService over any uploader and signer
func NewImageServiceWithStore(uploader ObjectUploader, signer URLSigner, bucket string) *ImageService {
	return &ImageService{
		uploader: uploader,
		signer:   signer,
		bucket:   bucket,
	}
}

// StoreRecipeImage uploads an image for a recipe by username and returns
// the stored path, suitable for Recipe.Image
func (s *ImageService) StoreRecipeImage(ctx context.Context, username, filename string, body io.Reader) (string, error) {
	key, err := models.ImageUploadPath(username, filename)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(io.LimitReader(body, maxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) > maxImageSize {
		return "", ErrImageTooLarge
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, mtype.String())
	}

	_, err = s.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mtype.String()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	log.Printf("[ImageService] Stored recipe image %s (%s, %d bytes)", key, mtype.String(), len(data))
	return key, nil
}

// ImageURL returns a short-lived download URL for a stored image path
func (s *ImageService) ImageURL(ctx context.Context, path string) (string, error) {
	url, err := s.signer.GeneratePresignedURL(ctx, path, imageURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign image URL: %w", err)
	}
	return url, nil
}
