package usecase

import "strings"

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Page normaliza limit/offset de listados.
func Page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// setString aplica un campo opcional de un PATCH.
func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// setRef aplica una referencia opcional; "" la deja en NULL.
func setRef(dst **string, src *string) {
	if src == nil {
		return
	}
	*dst = emptyToNil(src)
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
