// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/internal/validators"
	"github.com/MKhiriev/go-parish/models"
)

const galleryPrefix = "gallery/"

// PutPresigner is the part of *s3.PresignClient the media service uses.
type PutPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type mediaService struct {
	presigner PutPresigner
	cfg       config.Media
	validator validators.Validator
	keys      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewMediaService returns a MediaService for the bucket in cfg. Without a
// bucket every call fails with ErrMediaNotConfigured.
func NewMediaService(ctx context.Context, cfg config.Media, validator validators.Validator, logger *logger.Logger) (MediaService, error) {
	s := &mediaService{
		cfg:       cfg,
		validator: validator,
		keys:      utils.NewUUIDGenerator(),
		logger:    logger,
	}
	if cfg.Bucket == "" {
		return s, nil
	}

	presigner, err := newPresignClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating s3 presign client: %w", err)
	}
	s.presigner = presigner
	return s, nil
}

// NewMediaServiceWithPresigner wires an explicit presigner.
func NewMediaServiceWithPresigner(presigner PutPresigner, cfg config.Media, validator validators.Validator, logger *logger.Logger) MediaService {
	return &mediaService{
		presigner: presigner,
		cfg:       cfg,
		validator: validator,
		keys:      utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func newPresignClient(ctx context.Context, cfg config.Media) (PutPresigner, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// MinIO and most self-hosted stores want path-style URLs
			o.UsePathStyle = true
		}
	})

	return s3.NewPresignClient(client), nil
}

func (s *mediaService) UploadURL(ctx context.Context, req models.UploadURLRequest) (models.UploadURL, error) {
	log := logger.FromContext(ctx)

	if s.presigner == nil {
		return models.UploadURL{}, ErrMediaNotConfigured
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.UploadURL{}, fmt.Errorf("upload request is invalid: %w", err)
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		return models.UploadURL{}, fmt.Errorf("%w: only images can be uploaded", ErrInvalidDataProvided)
	}

	key := galleryPrefix + s.keys.Generate() + strings.ToLower(path.Ext(req.FileName))

	presigned, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(req.ContentType),
	}, s3.WithPresignExpires(s.cfg.PresignExpiry))
	if err != nil {
		log.Err(err).Str("func", "mediaService.UploadURL").Str("key", key).Msg("presigning failed")
		return models.UploadURL{}, fmt.Errorf("%w: %w", ErrPresignFailed, err)
	}

	upload := models.UploadURL{
		URL:       presigned.URL,
		Key:       key,
		ExpiresIn: int64(s.cfg.PresignExpiry / time.Second),
	}
	if s.cfg.PublicBaseURL != "" {
		upload.PublicURL = strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key
	}

	return upload, nil
}
