package jwtinfra

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-translator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeKeys generates a fresh RSA key pair and returns the PEM paths.
func writeKeys(t *testing.T) (privPath, pubPath string) {
	t.Helper()
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privPath = filepath.Join(dir, "private.pem")
	pubPath = filepath.Join(dir, "public.pem")

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privKey)})
	require.NoError(t, os.WriteFile(privPath, privPEM, 0600))

	pubBytes, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0600))
	return privPath, pubPath
}

func TestNewProvider_NotConfigured(t *testing.T) {
	_, err := NewProvider(&config.Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	priv, pub := writeKeys(t)
	p, err := NewProvider(&config.Config{JWTPrivateKeyPath: priv, JWTPublicKeyPath: pub, JWTExpiry: time.Hour})
	require.NoError(t, err)

	tok, err := p.Sign("u1")
	require.NoError(t, err)
	claims, err := p.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestVerify_Expired(t *testing.T) {
	priv, pub := writeKeys(t)
	p, err := NewProvider(&config.Config{JWTPrivateKeyPath: priv, JWTPublicKeyPath: pub, JWTExpiry: -time.Minute})
	require.NoError(t, err)

	tok, err := p.Sign("u1")
	require.NoError(t, err)
	_, err = p.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyOnlyProvider_CannotSign(t *testing.T) {
	_, pub := writeKeys(t)
	p, err := NewProvider(&config.Config{JWTPublicKeyPath: pub})
	require.NoError(t, err)
	_, err = p.Sign("u1")
	assert.ErrorContains(t, err, "verify-only")
}

func TestVerify_WrongKey(t *testing.T) {
	priv, _ := writeKeys(t)
	_, otherPub := writeKeys(t)
	signer, err := NewProvider(&config.Config{JWTPrivateKeyPath: priv, JWTPublicKeyPath: otherPub, JWTExpiry: time.Hour})
	require.NoError(t, err)
	tok, err := signer.Sign("u1")
	require.NoError(t, err)
	_, err = signer.Verify(tok)
	assert.Error(t, err)
}
