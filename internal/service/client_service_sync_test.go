// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	gateKey    struct{}
	versionKey struct{}
)

// fakeLister serves one event per collection whose title is the version found
// in the request context, or "v1". A gate channel in the context holds the
// request until it is closed.
type fakeLister struct {
	mu    sync.Mutex
	errs  map[models.Collection]error
	calls atomic.Int64
}

func (f *fakeLister) setErr(c models.Collection, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errs == nil {
		f.errs = make(map[models.Collection]error)
	}
	if err == nil {
		delete(f.errs, c)
		return
	}
	f.errs[c] = err
}

func (f *fakeLister) List(ctx context.Context, c models.Collection) ([]models.Record, error) {
	f.calls.Add(1)

	if gate, ok := ctx.Value(gateKey{}).(chan struct{}); ok {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	err := f.errs[c]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	version, _ := ctx.Value(versionKey{}).(string)
	if version == "" {
		version = "v1"
	}
	return []models.Record{recordFor(c, version)}, nil
}

func recordFor(c models.Collection, title string) models.Record {
	rec, _ := models.NewRecord(c)
	switch r := rec.(type) {
	case *models.Event:
		r.ID, r.Title = "event-1", title
	case *models.Sermon:
		r.ID, r.Title = "sermon-1", title
	case *models.Notification:
		r.ID, r.Title = "notification-1", title
	}
	return rec
}

func titleOf(t *testing.T, snap models.SyncSnapshot, c models.Collection) string {
	t.Helper()
	records := snap.Records(c)
	require.Len(t, records, 1)
	switch r := records[0].(type) {
	case *models.Event:
		return r.Title
	case *models.Sermon:
		return r.Title
	case *models.Notification:
		return r.Title
	}
	t.Fatalf("unexpected record %T", records[0])
	return ""
}

// manualJob never runs cycles on its own.
type manualJob struct {
	started atomic.Int64
	stopped atomic.Int64
}

func (j *manualJob) Start(context.Context, time.Duration) { j.started.Add(1) }
func (j *manualJob) Stop()                                { j.stopped.Add(1) }

// ctxJob remembers the context it was started with.
type ctxJob struct {
	manualJob
	ctx context.Context
}

func (j *ctxJob) Start(ctx context.Context, interval time.Duration) {
	j.ctx = ctx
	j.manualJob.Start(ctx, interval)
}

var testSyncCollections = []models.Collection{models.Events, models.Sermons, models.Notifications}

func newTestSyncHook(lister CollectionLister, job ClientSyncJob) *clientSyncService {
	s := NewClientSyncService(lister, testSyncCollections, config.ClientWorkers{
		SyncInterval: time.Hour,
		FetchTimeout: time.Second,
	}, logger.Nop()).(*clientSyncService)
	s.newJob = func(Syncer) ClientSyncJob { return job }
	return s
}

func withVersion(ctx context.Context, v string) context.Context {
	return context.WithValue(ctx, versionKey{}, v)
}

// ── Acquire / release ────────────────────────────────────────────────────────

func TestClientSyncService_Acquire_PublishesEmptyLoadingSnapshot(t *testing.T) {
	job := &manualJob{}
	s := newTestSyncHook(&fakeLister{}, job)

	release := s.Acquire(context.Background())
	defer release()

	snap := s.Snapshot()
	assert.True(t, snap.Loading)
	assert.Empty(t, snap.Collections())
	assert.NoError(t, snap.Err)
	assert.True(t, snap.LastSyncedAt.IsZero())
	assert.Equal(t, int64(1), job.started.Load())
}

func TestClientSyncService_Acquire_RefCounted(t *testing.T) {
	job := &manualJob{}
	s := newTestSyncHook(&fakeLister{}, job)
	ctx := context.Background()

	release1 := s.Acquire(ctx)
	release2 := s.Acquire(ctx)
	assert.Equal(t, int64(1), job.started.Load())

	release1()
	release1()
	assert.Equal(t, int64(0), job.stopped.Load(), "second holder keeps the hook alive")
	require.NoError(t, s.Refresh(ctx))

	release2()
	assert.Equal(t, int64(1), job.stopped.Load())
	assert.ErrorIs(t, s.Refresh(ctx), ErrSyncInactive)
}

func TestClientSyncService_Release_ResetsSnapshot(t *testing.T) {
	s := newTestSyncHook(&fakeLister{}, &manualJob{})
	ctx := context.Background()

	release := s.Acquire(ctx)
	require.NoError(t, s.Refresh(ctx))
	require.True(t, s.Snapshot().Has(models.Events))

	release()

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Collections())
}

func TestClientSyncService_Refresh_Inactive(t *testing.T) {
	lister := &fakeLister{}
	s := newTestSyncHook(lister, &manualJob{})

	assert.ErrorIs(t, s.Refresh(context.Background()), ErrSyncInactive)
	assert.Equal(t, int64(0), lister.calls.Load())
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestClientSyncService_Refresh_LoadsEveryCollection(t *testing.T) {
	lister := &fakeLister{}
	s := newTestSyncHook(lister, &manualJob{})
	ctx := context.Background()
	defer s.Acquire(ctx)()

	before := time.Now()
	require.NoError(t, s.Refresh(ctx))

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)
	assert.Equal(t, testSyncCollections, snap.Collections())
	assert.False(t, snap.LastSyncedAt.Before(before))
	assert.Equal(t, int64(len(testSyncCollections)), lister.calls.Load())
	for _, c := range testSyncCollections {
		assert.Equal(t, "v1", titleOf(t, snap, c))
	}
}

func TestClientSyncService_Refresh_FailureKeepsPreviousData(t *testing.T) {
	lister := &fakeLister{}
	s := newTestSyncHook(lister, &manualJob{})
	ctx := context.Background()
	defer s.Acquire(ctx)()

	require.NoError(t, s.Refresh(ctx))
	good := s.Snapshot()

	boom := errors.New("boom")
	lister.setErr(models.Sermons, boom)

	err := s.Refresh(withVersion(ctx, "v2"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncFailed)
	assert.ErrorIs(t, err, boom)

	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Len(t, syncErr.Failures, 1)
	assert.Contains(t, syncErr.Failures, models.Sermons)

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, err, snap.Err)
	assert.Equal(t, good.LastSyncedAt, snap.LastSyncedAt)
	for _, c := range testSyncCollections {
		assert.Equal(t, "v1", titleOf(t, snap, c), "%s must not change on a failed cycle", c)
	}
}

func TestClientSyncService_Refresh_SuccessClearsError(t *testing.T) {
	lister := &fakeLister{}
	s := newTestSyncHook(lister, &manualJob{})
	ctx := context.Background()
	defer s.Acquire(ctx)()

	lister.setErr(models.Events, errors.New("down"))
	require.Error(t, s.Refresh(ctx))
	assert.Error(t, s.Snapshot().Err)
	assert.False(t, s.Snapshot().Has(models.Events))

	lister.setErr(models.Events, nil)
	require.NoError(t, s.Refresh(withVersion(ctx, "v2")))

	snap := s.Snapshot()
	assert.NoError(t, snap.Err)
	assert.Empty(t, snap.ErrorMessage())
	assert.Equal(t, "v2", titleOf(t, snap, models.Events))
}

func TestClientSyncService_Refresh_FailureDoesNotCancelOtherFetches(t *testing.T) {
	lister := &fakeLister{}
	lister.setErr(models.Events, errors.New("down"))
	s := newTestSyncHook(lister, &manualJob{})
	ctx := context.Background()
	defer s.Acquire(ctx)()

	err := s.Refresh(ctx)

	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Len(t, syncErr.Failures, 1, "only the failing collection is reported")
	assert.Equal(t, int64(len(testSyncCollections)), lister.calls.Load())
}

func TestClientSyncService_Refresh_FetchTimeout(t *testing.T) {
	lister := &fakeLister{}
	s := newTestSyncHook(lister, &manualJob{})
	s.fetchTimeout = 10 * time.Millisecond
	ctx := context.Background()
	defer s.Acquire(ctx)()

	gate := make(chan struct{})
	defer close(gate)

	err := s.Refresh(context.WithValue(ctx, gateKey{}, gate))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, s.Snapshot().Loading)
}

func TestClientSyncService_Refresh_LoadingWhileInFlight(t *testing.T) {
	s := newTestSyncHook(&fakeLister{}, &manualJob{})
	ctx := context.Background()
	defer s.Acquire(ctx)()
	require.NoError(t, s.Refresh(ctx))
	require.False(t, s.Snapshot().Loading)

	gate := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- s.Refresh(context.WithValue(ctx, gateKey{}, gate)) }()

	assert.Eventually(t, func() bool { return s.Snapshot().Loading }, time.Second, time.Millisecond)
	assert.Equal(t, "v1", titleOf(t, s.Snapshot(), models.Events), "previous data stays visible while loading")

	close(gate)
	require.NoError(t, <-done)
	assert.False(t, s.Snapshot().Loading)
}

func TestClientSyncService_Refresh_StaleCycleDiscarded(t *testing.T) {
	lister := &fakeLister{}
	s := newTestSyncHook(lister, &manualJob{})
	ctx := context.Background()
	defer s.Acquire(ctx)()

	gate := make(chan struct{})
	slow := context.WithValue(withVersion(ctx, "old"), gateKey{}, gate)
	done := make(chan error, 1)
	go func() { done <- s.Refresh(slow) }()

	require.Eventually(t, func() bool {
		return lister.calls.Load() == int64(len(testSyncCollections))
	}, time.Second, time.Millisecond)

	require.NoError(t, s.Refresh(withVersion(ctx, "new")))
	assert.Equal(t, "new", titleOf(t, s.Snapshot(), models.Events))
	assert.True(t, s.Snapshot().Loading, "older cycle is still running")

	close(gate)
	require.NoError(t, <-done)

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "new", titleOf(t, snap, models.Events))
}

func TestClientSyncService_Refresh_DiscardedAfterRelease(t *testing.T) {
	s := newTestSyncHook(&fakeLister{}, &manualJob{})
	ctx := context.Background()
	release := s.Acquire(ctx)

	gate := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- s.Refresh(context.WithValue(ctx, gateKey{}, gate)) }()
	require.Eventually(t, func() bool { return s.Snapshot().Loading }, time.Second, time.Millisecond)

	release()
	close(gate)

	assert.ErrorIs(t, <-done, ErrSyncInactive)
	snap := s.Snapshot()
	assert.Empty(t, snap.Collections())
	assert.False(t, snap.Loading)
}

func TestClientSyncService_Snapshot_RecordsAreCopies(t *testing.T) {
	s := newTestSyncHook(&fakeLister{}, &manualJob{})
	ctx := context.Background()
	defer s.Acquire(ctx)()
	require.NoError(t, s.Refresh(ctx))

	records := s.Snapshot().Records(models.Events)
	records[0] = recordFor(models.Events, "mutated")

	assert.Equal(t, "v1", titleOf(t, s.Snapshot(), models.Events))
}

// ── Subscribe ────────────────────────────────────────────────────────────────

func TestClientSyncService_Subscribe_DeliversLatest(t *testing.T) {
	s := newTestSyncHook(&fakeLister{}, &manualJob{})
	ctx := context.Background()

	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	initial := <-ch
	assert.False(t, initial.Loading)

	defer s.Acquire(ctx)()
	require.NoError(t, s.Refresh(ctx))
	require.NoError(t, s.Refresh(withVersion(ctx, "v2")))

	// intermediate snapshots were replaced; only the last one is buffered
	latest := <-ch
	assert.False(t, latest.Loading)
	assert.Equal(t, "v2", titleOf(t, latest, models.Events))

	select {
	case snap := <-ch:
		t.Fatalf("unexpected extra snapshot %+v", snap)
	default:
	}
}

func TestClientSyncService_Subscribe_UnsubscribeClosesChannel(t *testing.T) {
	s := newTestSyncHook(&fakeLister{}, &manualJob{})

	ch, unsubscribe := s.Subscribe()
	<-ch
	unsubscribe()
	unsubscribe()

	_, ok := <-ch
	assert.False(t, ok)

	defer s.Acquire(context.Background())()
	assert.Empty(t, s.subs)
}

// ── with the polling job ─────────────────────────────────────────────────────

func TestClientSyncService_PollsUntilReleased(t *testing.T) {
	lister := &fakeLister{}
	s := NewClientSyncService(lister, testSyncCollections, config.ClientWorkers{
		SyncInterval: 10 * time.Millisecond,
		FetchTimeout: time.Second,
	}, logger.Nop())

	release := s.Acquire(context.Background())

	require.Eventually(t, func() bool {
		return lister.calls.Load() >= int64(3*len(testSyncCollections))
	}, time.Second, 5*time.Millisecond)
	assert.True(t, s.Snapshot().Has(models.Events))

	release()
	calls := lister.calls.Load()
	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, calls, lister.calls.Load(), "no request may be issued after release")
	assert.Empty(t, s.Snapshot().Collections())
}

func TestClientSyncService_JobOutlivesFirstAcquirer(t *testing.T) {
	job := &ctxJob{}
	s := newTestSyncHook(&fakeLister{}, job)

	firstCtx, cancelFirst := context.WithCancel(withVersion(context.Background(), "v1"))
	releaseFirst := s.Acquire(firstCtx)
	releaseSecond := s.Acquire(context.Background())

	require.NotNil(t, job.ctx)
	assert.Equal(t, "v1", job.ctx.Value(versionKey{}), "values of the first context are kept")

	cancelFirst()
	releaseFirst()
	assert.NoError(t, job.ctx.Err(), "another holder still needs the job")

	releaseSecond()
	assert.ErrorIs(t, job.ctx.Err(), context.Canceled)
}

func TestClientSyncService_KeepsPollingAfterFirstAcquirerIsCancelled(t *testing.T) {
	lister := &fakeLister{}
	s := NewClientSyncService(lister, testSyncCollections, config.ClientWorkers{
		SyncInterval: 10 * time.Millisecond,
		FetchTimeout: time.Second,
	}, logger.Nop())

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	releaseFirst := s.Acquire(firstCtx)
	releaseSecond := s.Acquire(context.Background())
	defer releaseSecond()

	cancelFirst()
	releaseFirst()

	calls := lister.calls.Load()
	require.Eventually(t, func() bool {
		return lister.calls.Load() >= calls+int64(2*len(testSyncCollections))
	}, time.Second, 5*time.Millisecond)
}

func TestClientSyncService_Reactivation(t *testing.T) {
	lister := &fakeLister{}
	s := NewClientSyncService(lister, testSyncCollections, config.ClientWorkers{
		SyncInterval: time.Hour,
	}, logger.Nop())

	s.Acquire(context.Background())()

	release := s.Acquire(context.Background())
	defer release()

	assert.Eventually(t, func() bool {
		snap := s.Snapshot()
		return !snap.Loading && snap.Has(models.Events)
	}, time.Second, 5*time.Millisecond)
}

// ── SyncError ────────────────────────────────────────────────────────────────

func TestSyncError_Error_SortedByCollection(t *testing.T) {
	err := &SyncError{Failures: map[models.Collection]error{
		models.Sermons: errors.New("timeout"),
		models.Events:  errors.New("503"),
	}}

	assert.Equal(t, "sync failed (events: 503; sermons: timeout)", err.Error())
}
