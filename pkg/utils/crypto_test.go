package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestEncryptDecryptRoundtrip(t *testing.T) {
	sealed, err := Encrypt([]byte("access-token-value"), testKey)
	require.NoError(t, err)
	assert.NotEqual(t, "access-token-value", sealed)

	plain, err := Decrypt(sealed, testKey)
	require.NoError(t, err)
	assert.Equal(t, "access-token-value", plain)
}

func TestDecryptWrongKey(t *testing.T) {
	sealed, err := Encrypt([]byte("secret"), testKey)
	require.NoError(t, err)

	otherKey := []byte("ffffffffffffffffffffffffffffffff")
	_, err = Decrypt(sealed, otherKey)
	assert.Error(t, err)
}

func TestDecryptCiphertextTooShort(t *testing.T) {
	short := base64.StdEncoding.EncodeToString([]byte("abc"))
	_, err := Decrypt(short, testKey)
	require.Error(t, err)
	assert.Equal(t, "ciphertext too short", err.Error())
}

func TestEncryptInvalidKeySize(t *testing.T) {
	_, err := Encrypt([]byte("secret"), []byte("short-key"))
	assert.Error(t, err)
}

func TestDecryptInvalidBase64(t *testing.T) {
	_, err := Decrypt("not base64!!", testKey)
	assert.Error(t, err)
}
