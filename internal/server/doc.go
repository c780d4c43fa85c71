// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the Remote Store listeners.
//
// It owns the lifecycles of the REST and gRPC health servers: startup,
// signal handling and graceful shutdown of every enabled transport.
package server
