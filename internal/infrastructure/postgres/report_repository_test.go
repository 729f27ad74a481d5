package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationName(t *testing.T) {
	bogota := time.FixedZone("America/Bogota", -5*3600)

	assert.Equal(t, "UTC", locationName(nil))
	assert.Equal(t, "UTC", locationName(time.Local), "PostgreSQL rechaza 'Local'")
	assert.Equal(t, "UTC", locationName(time.UTC))
	assert.Equal(t, "America/Bogota", locationName(bogota))
}
