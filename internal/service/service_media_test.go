// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/validators"
	"github.com/MKhiriev/go-parish/models"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	input *s3.PutObjectInput
	opts  s3.PresignOptions
	err   error
}

func (f *fakePresigner) PresignPutObject(_ context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.input = params
	for _, fn := range optFns {
		fn(&f.opts)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://s3.example.org/" + *params.Bucket + "/" + *params.Key, Method: "PUT"}, nil
}

func testMediaConfig() config.Media {
	return config.Media{
		Bucket:        "parish-media",
		Region:        "us-east-1",
		PublicBaseURL: "https://cdn.example.org/",
		PresignExpiry: 15 * time.Minute,
	}
}

func TestMediaService_UploadURL(t *testing.T) {
	presigner := &fakePresigner{}
	svc := NewMediaServiceWithPresigner(presigner, testMediaConfig(), validators.NewValidator(), logger.Nop())

	u, err := svc.UploadURL(context.Background(), models.UploadURLRequest{FileName: "Easter.JPG", ContentType: "image/jpeg"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(u.Key, "gallery/"))
	assert.True(t, strings.HasSuffix(u.Key, ".jpg"))
	assert.Equal(t, "https://cdn.example.org/"+u.Key, u.PublicURL)
	assert.Equal(t, int64(900), u.ExpiresIn)
	assert.Contains(t, u.URL, u.Key)

	assert.Equal(t, "parish-media", *presigner.input.Bucket)
	assert.Equal(t, "image/jpeg", *presigner.input.ContentType)
	assert.Equal(t, 15*time.Minute, presigner.opts.Expires)
}

func TestMediaService_UploadURL_Rejections(t *testing.T) {
	svc := NewMediaServiceWithPresigner(&fakePresigner{}, testMediaConfig(), validators.NewValidator(), logger.Nop())
	ctx := context.Background()

	_, err := svc.UploadURL(ctx, models.UploadURLRequest{FileName: "notes.pdf", ContentType: "application/pdf"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.UploadURL(ctx, models.UploadURLRequest{ContentType: "image/png"})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestMediaService_UploadURL_PresignFailure(t *testing.T) {
	svc := NewMediaServiceWithPresigner(&fakePresigner{err: errors.New("no credentials")}, testMediaConfig(), validators.NewValidator(), logger.Nop())

	_, err := svc.UploadURL(context.Background(), models.UploadURLRequest{FileName: "a.png", ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrPresignFailed)
}

func TestMediaService_NotConfigured(t *testing.T) {
	svc, err := NewMediaService(context.Background(), config.Media{}, validators.NewValidator(), logger.Nop())
	require.NoError(t, err)

	_, err = svc.UploadURL(context.Background(), models.UploadURLRequest{FileName: "a.png", ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrMediaNotConfigured)
}

func TestMediaService_RealPresignClientSignsOffline(t *testing.T) {
	cfg := testMediaConfig()
	cfg.Endpoint = "http://localhost:9000"
	cfg.AccessKey = "minio"
	cfg.SecretKey = "minio-secret"

	svc, err := NewMediaService(context.Background(), cfg, validators.NewValidator(), logger.Nop())
	require.NoError(t, err)

	u, err := svc.UploadURL(context.Background(), models.UploadURLRequest{FileName: "a.png", ContentType: "image/png"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(u.URL, "http://localhost:9000/parish-media/gallery/"), u.URL)
	assert.Contains(t, u.URL, "X-Amz-Signature=")
	assert.Contains(t, u.URL, "X-Amz-Expires=900")
}
