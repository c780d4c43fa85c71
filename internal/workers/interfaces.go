// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs next to the terminal UI.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] starts a
// set of them together and stops all of them when the first one fails.
package workers

import "context"

// Worker is a long-running background job.
//
// Run blocks until ctx is cancelled or the job fails. Returning ctx.Err() on
// shutdown is not treated as a failure by [Workers].
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to the [Worker] interface.
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
