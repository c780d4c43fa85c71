// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the parish Remote Store.
//
// It wires the chi routes for content, visitors, sermon views, donations and
// media uploads, plus the websocket change feed. Cross-cutting concerns such
// as admin authentication, request tracing, access logging, response
// compression and callback integrity checks are middlewares in this package;
// handlers only decode requests and delegate to the service layer.
package http
