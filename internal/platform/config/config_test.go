// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/marquee/internal/platform/config"
)

/*
TestLoad_MemoryDriver verifies defaults when running without PostgreSQL.
*/
func TestLoad_MemoryDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/tmp/pub.pem")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.DriverMemory, cfg.StorageDriver)
	assert.Equal(t, 10*time.Minute, cfg.ProfileCacheTTL)
	assert.Equal(t, 3, cfg.ReactionMaxAttempts)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_PostgresRequiresDSN ensures the postgres driver cannot start without a DSN.
*/
func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/tmp/pub.pem")

	_, err := config.Load()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/tmp/pub.pem")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_RequiresPublicKey(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "")

	_, err := config.Load()
	assert.Error(t, err)
}
