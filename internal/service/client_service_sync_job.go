// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-parish/internal/config"
)

type clientSyncJob struct {
	syncer Syncer

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls syncer.Refresh on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(syncer Syncer) ClientSyncJob {
	return &clientSyncJob{syncer: syncer}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that calls Refresh once right away and then
// every interval. If interval is zero or negative it defaults to
// config.DefaultSyncInterval. The goroutine exits when ctx is cancelled or
// Stop is called.
//
// Ticks that fire while a cycle is still running are dropped, so cycles of
// one job never overlap.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		_ = j.syncer.Refresh(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.syncer.Refresh(jobCtx)
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
