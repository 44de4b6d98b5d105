// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/marquee/internal/platform/sec"
	"github.com/taibuivan/marquee/internal/platform/sec/sectest"
)

/*
TestTokenService_RoundTrip signs a token and verifies it with the same key pair.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := sectest.NewTokenService(t)

	token, err := service.GenerateAccessToken("user-1", "ana", time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana", claims.Username)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	service := sectest.NewTokenService(t)

	token, err := service.GenerateAccessToken("user-1", "ana", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsForeignKey(t *testing.T) {
	signer := sectest.NewTokenService(t)
	verifier := sectest.NewTokenService(t)

	token, err := signer.GenerateAccessToken("user-1", "ana", time.Minute)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestTokenVerifier_CannotSign(t *testing.T) {
	_, publicPath := sectest.WriteKeyPair(t)

	verifier, err := sec.NewTokenVerifier(publicPath, "marquee.app")
	require.NoError(t, err)

	_, err = verifier.GenerateAccessToken("user-1", "ana", time.Minute)
	assert.Error(t, err)
}

func TestTokenVerifier_MissingFile(t *testing.T) {
	_, err := sec.NewTokenVerifier("/does/not/exist.pem", "marquee.app")
	assert.Error(t, err)
}
