// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means neither SERVER_ADDRESS nor
// SERVER_GRPC_ADDRESS is set.
var errNoServersAreCreated = errors.New("no listener configured: set an HTTP or gRPC address")
