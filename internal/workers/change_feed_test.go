// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/mock"
	"github.com/MKhiriev/go-parish/internal/service"
	"github.com/MKhiriev/go-parish/models"
)

type gateSyncer struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	err     error
}

func newGateSyncer() *gateSyncer {
	return &gateSyncer{started: make(chan struct{}, 16), release: make(chan struct{})}
}

func (s *gateSyncer) Refresh(ctx context.Context) error {
	s.calls.Add(1)
	s.started <- struct{}{}
	select {
	case <-s.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.err
}

func event(op models.ChangeOp) models.ChangeEvent {
	return models.ChangeEvent{Collection: models.Events, Op: op, ID: "e1"}
}

func TestChangeFeedWorker_CoalescesHintsDuringRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mock.NewMockChangeListener(ctrl)
	syncer := newGateSyncer()

	listener.EXPECT().Listen(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, onChange func(models.ChangeEvent)) error {
			onChange(event(models.OpCreate))
			<-syncer.started

			onChange(event(models.OpUpdate))
			onChange(event(models.OpUpdate))
			onChange(event(models.OpDelete))
			close(syncer.release)

			<-ctx.Done()
			return ctx.Err()
		})

	w := NewChangeFeedWorker(listener, logger.Nop(), syncer)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return syncer.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(2), syncer.calls.Load())

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestChangeFeedWorker_RefreshesEverySyncer(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mock.NewMockChangeListener(ctrl)

	public := newGateSyncer()
	admin := newGateSyncer()
	admin.err = service.ErrSyncInactive
	close(public.release)
	close(admin.release)

	listener.EXPECT().Listen(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, onChange func(models.ChangeEvent)) error {
			onChange(event(models.OpCreate))
			<-ctx.Done()
			return ctx.Err()
		})

	w := NewChangeFeedWorker(listener, logger.Nop(), public, admin)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.Eventually(t, func() bool {
		return public.calls.Load() == 1 && admin.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestChangeFeedWorker_ListenerFailureStopsWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mock.NewMockChangeListener(ctrl)
	broken := errors.New("bad feed url")

	listener.EXPECT().Listen(gomock.Any(), gomock.Any()).Return(broken)

	w := NewChangeFeedWorker(listener, logger.Nop(), newGateSyncer())

	select {
	case err := <-runAsync(w):
		assert.ErrorIs(t, err, broken)
	case <-time.After(time.Second):
		t.Fatal("worker kept running after listener failure")
	}
}

func runAsync(w Worker) <-chan error {
	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background()) }()
	return done
}
