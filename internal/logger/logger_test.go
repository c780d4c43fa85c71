// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_Fields verifies that entries carry role, time and a caller
// field named "func".
func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNewLogger_NotNil verifies the stdout constructor.
func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("server"))
}

// TestWithComponent verifies that the child carries the component field and
// the parent stays untouched.
func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "client")
	child := parent.WithComponent("sync")

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "sync", entry["component"])

	buf.Reset()
	parent.Info().Msg("parent")
	entry = decodeEntry(t, &buf)
	assert.NotContains(t, entry, "component")
}

// TestNop_DiscardsOutput verifies that Nop never panics and writes nothing.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() { l.Error().Msg("ignored") })
}

// TestFromContext_ReturnsAttachedLogger verifies round-tripping through
// zerolog's context helpers.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := newLogger(&buf, "ctx").With().Str("trace_id", "abc").Logger()
	ctx := base.WithContext(context.Background())

	FromContext(ctx).Info().Msg("in ctx")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "abc", entry["trace_id"])
}

// TestFromRequest_UsesRequestContext verifies the request shortcut.
func TestFromRequest_UsesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	base := newLogger(&buf, "req").With().Str("trace_id", "req-1").Logger()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	FromRequest(r).Info().Msg("in request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req-1", entry["trace_id"])
}

// TestFromContext_NoLoggerNeverNil verifies the fallback path.
func TestFromContext_NoLoggerNeverNil(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role")

	warnOnly, err := l.WithLevel("warn")
	require.NoError(t, err)

	warnOnly.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	warnOnly.Warn().Msg("kept")
	assert.Equal(t, "kept", decodeEntry(t, &buf)["message"])

	same, err := l.WithLevel("")
	require.NoError(t, err)
	assert.Same(t, l, same)

	fallback, err := l.WithLevel("loud")
	assert.Error(t, err)
	assert.Same(t, l, fallback)
}
