// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sectest builds throwaway RS256 key pairs for tests.
package sectest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/taibuivan/marquee/internal/platform/constants"
	"github.com/taibuivan/marquee/internal/platform/sec"
)

// WriteKeyPair writes a fresh PEM key pair into t.TempDir and returns both paths.
func WriteKeyPair(t testing.TB) (privatePath, publicPath string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}

	dir := t.TempDir()
	privatePath = filepath.Join(dir, "private.pem")
	publicPath = filepath.Join(dir, "public.pem")

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	if err := os.WriteFile(privatePath, privatePEM, 0o600); err != nil {
		t.Fatalf("write private key: %v", err)
	}
	if err := os.WriteFile(publicPath, publicPEM, 0o600); err != nil {
		t.Fatalf("write public key: %v", err)
	}

	return privatePath, publicPath
}

// NewTokenService returns a signing [sec.TokenService] backed by a fresh key pair.
func NewTokenService(t testing.TB) *sec.TokenService {
	t.Helper()

	privatePath, publicPath := WriteKeyPair(t)
	service, err := sec.NewTokenService(privatePath, publicPath, constants.AuthIssuer)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return service
}
