// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-parish/internal/config"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/models"
	"golang.org/x/sync/errgroup"
)

// CollectionLister reads one collection from the Remote Store.
// adapter.ServerAdapter satisfies it.
type CollectionLister interface {
	List(ctx context.Context, c models.Collection) ([]models.Record, error)
}

// SyncError reports the collections that failed during one sync cycle.
// errors.Is matches ErrSyncFailed and every individual failure.
type SyncError struct {
	Failures map[models.Collection]error
}

func (e *SyncError) Error() string {
	names := make([]string, 0, len(e.Failures))
	for c := range e.Failures {
		names = append(names, string(c))
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %v", name, e.Failures[models.Collection(name)]))
	}
	return fmt.Sprintf("%v (%s)", ErrSyncFailed, strings.Join(parts, "; "))
}

func (e *SyncError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures)+1)
	errs = append(errs, ErrSyncFailed)
	for _, err := range e.Failures {
		errs = append(errs, err)
	}
	return errs
}

type clientSyncService struct {
	lister       CollectionLister
	collections  []models.Collection
	interval     time.Duration
	fetchTimeout time.Duration
	newJob       func(Syncer) ClientSyncJob
	logger       *logger.Logger

	mu   sync.Mutex
	refs int
	job  ClientSyncJob

	// stopJob cancels the job context. The job outlives the acquirer that
	// started it, so it never runs on a caller's context.
	stopJob context.CancelFunc

	// epoch changes on every activation and deactivation; cycles started
	// in an older epoch neither publish nor touch inflight.
	epoch     uint64
	seq       uint64
	published uint64
	inflight  int

	snapshot models.SyncSnapshot
	subs     map[uint64]chan models.SyncSnapshot
	nextSub  uint64
}

// NewClientSyncService returns a hook that keeps collections in sync with the
// Remote Store. It is inactive until the first Acquire.
func NewClientSyncService(lister CollectionLister, collections []models.Collection, cfg config.ClientWorkers, logger *logger.Logger) ClientSyncService {
	interval := cfg.SyncInterval
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = config.DefaultFetchTimeout
	}

	cs := make([]models.Collection, len(collections))
	copy(cs, collections)

	return &clientSyncService{
		lister:       lister,
		collections:  cs,
		interval:     interval,
		fetchTimeout: fetchTimeout,
		newJob:       NewClientSyncJob,
		logger:       logger.WithComponent("sync"),
		subs:         make(map[uint64]chan models.SyncSnapshot),
	}
}

func (s *clientSyncService) Acquire(ctx context.Context) func() {
	s.mu.Lock()
	s.refs++
	if s.refs == 1 {
		s.epoch++
		s.inflight = 0
		s.published = s.seq
		s.snapshot = models.SyncSnapshot{Loading: true}
		s.publishLocked()

		// Start only launches the goroutine; its first cycle waits for mu.
		jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		s.stopJob = cancel
		s.job = s.newJob(s)
		s.job.Start(jobCtx, s.interval)
		s.logger.Debug().Int("collections", len(s.collections)).Dur("interval", s.interval).Msg("sync hook activated")
	}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(s.release)
	}
}

func (s *clientSyncService) release() {
	s.mu.Lock()
	s.refs--
	if s.refs > 0 {
		s.mu.Unlock()
		return
	}

	s.epoch++
	s.inflight = 0
	s.snapshot = models.SyncSnapshot{}
	s.publishLocked()
	job, stopJob := s.job, s.stopJob
	s.job, s.stopJob = nil, nil
	s.mu.Unlock()

	if stopJob != nil {
		stopJob()
	}
	if job != nil {
		job.Stop()
	}
	s.logger.Debug().Msg("sync hook deactivated")
}

// Refresh fetches every collection concurrently. The cycle is all-or-nothing:
// held collections are replaced only when every fetch succeeded, otherwise
// they stay as they were and Err is set. A cycle that finishes after a newer
// one has published is discarded.
func (s *clientSyncService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.refs == 0 {
		s.mu.Unlock()
		return ErrSyncInactive
	}
	epoch := s.epoch
	s.seq++
	seq := s.seq
	s.inflight++
	if !s.snapshot.Loading {
		s.snapshot.Loading = true
		s.publishLocked()
	}
	s.mu.Unlock()

	staged, failures := s.fetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return ErrSyncInactive
	}
	s.inflight--

	var cycleErr error
	if len(failures) > 0 {
		cycleErr = &SyncError{Failures: failures}
	}

	switch {
	case seq < s.published:
		s.logger.Debug().Uint64("seq", seq).Uint64("published", s.published).Msg("stale sync cycle discarded")
	case cycleErr != nil:
		s.published = seq
		s.snapshot.Err = cycleErr
		s.logger.Warn().Err(cycleErr).Int("failed", len(failures)).Msg("sync cycle failed, keeping previous data")
	default:
		s.published = seq
		s.snapshot = s.snapshot.WithCollections(staged)
		s.snapshot.Err = nil
		s.snapshot.LastSyncedAt = time.Now()
	}

	s.snapshot.Loading = s.inflight > 0
	s.publishLocked()

	return cycleErr
}

// fetchAll lets every request settle; one failure does not cancel the others.
func (s *clientSyncService) fetchAll(ctx context.Context) (map[models.Collection][]models.Record, map[models.Collection]error) {
	results := make([][]models.Record, len(s.collections))
	errs := make([]error, len(s.collections))

	var g errgroup.Group
	for i, c := range s.collections {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()

			records, err := s.lister.List(fetchCtx, c)
			if err != nil {
				errs[i] = err
				return err
			}
			if records == nil {
				records = []models.Record{}
			}
			results[i] = records
			return nil
		})
	}
	_ = g.Wait()

	staged := make(map[models.Collection][]models.Record, len(s.collections))
	var failures map[models.Collection]error
	for i, c := range s.collections {
		if errs[i] != nil {
			if failures == nil {
				failures = make(map[models.Collection]error)
			}
			failures[c] = errs[i]
			continue
		}
		staged[c] = results[i]
	}
	return staged, failures
}

func (s *clientSyncService) Snapshot() models.SyncSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *clientSyncService) Subscribe() (<-chan models.SyncSnapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan models.SyncSnapshot, 1)
	ch <- s.snapshot
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// publishLocked hands the current snapshot to every subscriber, replacing an
// unread one. Callers hold mu.
func (s *clientSyncService) publishLocked() {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s.snapshot:
		default:
		}
	}
}
