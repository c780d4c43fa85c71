// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until the user quits or
	// ctx is cancelled.
	Run(ctx context.Context) error
}

// UI is the interactive front end run in the foreground.
type UI interface {
	Run(ctx context.Context) error
}

// Background runs the client's background workers.
type Background interface {
	Run(ctx context.Context) error
}
