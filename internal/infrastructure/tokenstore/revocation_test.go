package tokenstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocationList_RevocadoHastaExpirar(t *testing.T) {
	l := NewRevocationList(time.Minute)

	l.Revoke("jti-1", time.Now().Add(time.Hour))
	assert.True(t, l.IsRevoked("jti-1"))
	assert.False(t, l.IsRevoked("jti-2"))
	assert.Equal(t, 1, l.Len())
}

func TestRevocationList_EntradaExpiraConElToken(t *testing.T) {
	l := NewRevocationList(time.Minute)

	l.Revoke("jti-1", time.Now().Add(50*time.Millisecond))
	assert.True(t, l.IsRevoked("jti-1"))

	assert.Eventually(t, func() bool { return !l.IsRevoked("jti-1") }, time.Second, 10*time.Millisecond)
}

func TestRevocationList_IgnoraExpiradosOVacios(t *testing.T) {
	l := NewRevocationList(time.Minute)

	l.Revoke("old", time.Now().Add(-time.Second))
	l.Revoke("", time.Now().Add(time.Hour))

	assert.False(t, l.IsRevoked("old"))
	assert.False(t, l.IsRevoked(""))
	assert.Equal(t, 0, l.Len())
}
