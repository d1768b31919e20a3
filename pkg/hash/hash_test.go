package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcrypt(t *testing.T) {
	hashed, err := BcryptHash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hashed)
	assert.True(t, IsBcryptHash(hashed))
	assert.True(t, BcryptCheck("s3cret", hashed))
	assert.False(t, BcryptCheck("wrong", hashed))
}

func TestBcryptSalted(t *testing.T) {
	a, err := BcryptHash("same")
	require.NoError(t, err)
	b, err := BcryptHash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestIsBcryptHash(t *testing.T) {
	assert.False(t, IsBcryptHash("plain"))
	assert.False(t, IsBcryptHash(""))
	assert.False(t, IsBcryptHash("$"+strings.Repeat("x", 59)))
}
