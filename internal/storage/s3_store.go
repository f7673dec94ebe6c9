package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"regexp"
	"strings"

	"fashionhub/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ObjectAPI is the subset of the S3 client used by S3ImageStore.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	PutObjectAcl(ctx context.Context, params *s3.PutObjectAclInput, optFns ...func(*s3.Options)) (*s3.PutObjectAclOutput, error)
}

// S3Options configures an S3ImageStore.
type S3Options struct {
	Bucket         string
	Region         string
	Folder         string
	Endpoint       string
	PublicBaseURL  string
	UsePathStyle   bool
	MaxUploadBytes int64
}

// S3ImageStore implements ImageStore on top of an S3 bucket.
type S3ImageStore struct {
	client ObjectAPI
	opts   S3Options
	newKey func(filename string) string
	logger zerolog.Logger
}

// NewS3Client builds an S3 client from the default AWS credential chain.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	}), nil
}

// NewS3ImageStore creates an image store writing to the configured bucket.
func NewS3ImageStore(client ObjectAPI, opts S3Options, logger zerolog.Logger) *S3ImageStore {
	s := &S3ImageStore{
		client: client,
		opts:   opts,
		logger: logger.With().Str("component", "s3-image-store").Logger(),
	}
	s.newKey = s.objectKey

	s.logger.Info().
		Str("bucket", opts.Bucket).
		Str("region", opts.Region).
		Str("folder", opts.Folder).
		Msg("S3 image store initialised")

	return s
}

// Upload puts the image into the bucket, grants public read on it and
// returns the derived public URL.
func (s *S3ImageStore) Upload(ctx context.Context, img ImageUpload) (string, error) {
	if img.Body == nil {
		return "", model.NewValidationError("image file is required")
	}

	if s.opts.MaxUploadBytes > 0 && img.Size > s.opts.MaxUploadBytes {
		return "", model.NewValidationError(fmt.Sprintf("image exceeds maximum size of %d bytes", s.opts.MaxUploadBytes))
	}

	contentType, err := detectContentType(img)
	if err != nil {
		return "", err
	}

	key := s.newKey(img.Filename)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.opts.Bucket),
		Key:           aws.String(key),
		Body:          img.Body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(img.Size),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.opts.Bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return "", fmt.Errorf("failed to upload image (bucket=%s, key=%s): %w", s.opts.Bucket, key, err)
	}

	_, err = s.client.PutObjectAcl(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
		ACL:    types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.opts.Bucket).
			Str("key", key).
			Msg("failed to grant public read on S3 object")
		return "", fmt.Errorf("failed to publish image %s: %w", key, err)
	}

	url := s.PublicURL(key)

	s.logger.Info().
		Str("key", key).
		Int64("size", img.Size).
		Str("content_type", contentType).
		Msg("image uploaded")

	return url, nil
}

// PublicURL derives the public URL of an object key.
func (s *S3ImageStore) PublicURL(key string) string {
	if s.opts.PublicBaseURL != "" {
		return strings.TrimRight(s.opts.PublicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.opts.Bucket, s.opts.Region, key)
}

func (s *S3ImageStore) objectKey(filename string) string {
	name := uuid.NewString() + "-" + SanitizeFilename(filename)
	if folder := strings.Trim(s.opts.Folder, "/"); folder != "" {
		return folder + "/" + name
	}
	return name
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips directories and replaces anything outside
// [A-Za-z0-9._-] with underscores.
func SanitizeFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "image"
	}
	return name
}

// detectContentType trusts a declared image/* type, otherwise sniffs the
// first 512 bytes. Non-images are rejected.
func detectContentType(img ImageUpload) (string, error) {
	contentType := strings.TrimSpace(img.ContentType)

	if !strings.HasPrefix(contentType, "image/") {
		head := make([]byte, 512)
		n, err := io.ReadFull(img.Body, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return "", fmt.Errorf("failed to read image: %w", err)
		}
		if _, err := img.Body.Seek(0, io.SeekStart); err != nil {
			return "", fmt.Errorf("failed to rewind image: %w", err)
		}
		contentType = http.DetectContentType(head[:n])
	}

	if !strings.HasPrefix(contentType, "image/") {
		return "", model.NewValidationError(fmt.Sprintf("unsupported image content type: %s", contentType))
	}

	return contentType, nil
}
