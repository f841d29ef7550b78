package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest_Deterministico(t *testing.T) {
	// sha256 hex de "admin123"; o mesmo input sempre produz o mesmo digest.
	d1 := Digest("admin123")
	d2 := Digest("admin123")
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64, "sha256 em hex tem 64 caracteres")
	assert.Equal(t, "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9", d1)
}

func TestCheck(t *testing.T) {
	digest := Digest("segredo1")
	assert.True(t, Check(digest, "segredo1"))
	assert.False(t, Check(digest, "segredo2"))
	assert.False(t, Check(digest, ""))
}
