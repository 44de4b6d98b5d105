// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/marquee/internal/platform/ctxutil"
	"github.com/taibuivan/marquee/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_CurrentUserID covers anonymous and authenticated callers.
*/
func TestContext_CurrentUserID(t *testing.T) {
	ctx := context.Background()

	_, ok := ctxutil.CurrentUserID(ctx)
	assert.False(t, ok)

	ctx = ctxutil.WithAuthUser(ctx, &sec.AuthClaims{UserID: "user-123", Username: "ana"})
	userID, ok := ctxutil.CurrentUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "ana", ctxutil.GetAuthUser(ctx).Username)

	ctx = ctxutil.WithAuthUser(context.Background(), &sec.AuthClaims{})
	_, ok = ctxutil.CurrentUserID(ctx)
	assert.False(t, ok)
}
