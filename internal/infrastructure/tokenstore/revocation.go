// Package tokenstore guarda en memoria los jti de tokens invalidados por logout.
package tokenstore

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jhoicas/factory-ops-api/internal/application/auth"
)

var _ auth.TokenRevoker = (*RevocationList)(nil)

// RevocationList cada entrada vive hasta que el token expira por sí solo.
type RevocationList struct {
	store *cache.Cache
	now   func() time.Time
}

// NewRevocationList crea la lista; cleanup es la frecuencia de purga de entradas vencidas.
func NewRevocationList(cleanup time.Duration) *RevocationList {
	return &RevocationList{store: cache.New(cache.NoExpiration, cleanup), now: time.Now}
}

// Revoke invalida tokenID hasta until. Un token ya vencido no necesita entrada.
func (l *RevocationList) Revoke(tokenID string, until time.Time) {
	if tokenID == "" {
		return
	}
	ttl := until.Sub(l.now())
	if ttl <= 0 {
		return
	}
	l.store.Set(tokenID, struct{}{}, ttl)
}

func (l *RevocationList) IsRevoked(tokenID string) bool {
	if tokenID == "" {
		return false
	}
	_, found := l.store.Get(tokenID)
	return found
}

// Len entradas vigentes.
func (l *RevocationList) Len() int {
	return l.store.ItemCount()
}
