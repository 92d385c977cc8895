package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := Hash("s3cret-password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := Verify("s3cret-password", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("wrong-password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("same-password")
	require.NoError(t, err)
	second, err := Hash("same-password")
	require.NoError(t, err)

	// Разные соли дают разные строки для одного пароля
	assert.NotEqual(t, first, second)
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := Hash("")
	assert.Error(t, err)
}

func TestVerifyMalformedHash(t *testing.T) {
	for _, bad := range []string{"", "plaintext", "$argon2i$v=19$m=1,t=1,p=1$x$y"} {
		_, err := Verify("password", bad)
		assert.Error(t, err, "hash %q", bad)
	}
}
