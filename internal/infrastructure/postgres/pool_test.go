package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-ops-api/pkg/config"
)

func TestBuildPoolConfig_DesdeCampos(t *testing.T) {
	cfg := config.DBConfig{
		Host:            "127.0.0.1",
		Port:            5433,
		User:            "ops",
		Password:        "p@ss:word",
		DBName:          "factory_ops",
		SSLMode:         "disable",
		MaxConns:        8,
		MinConns:        3,
		ApplicationName: "factory-ops",
	}
	pc, err := buildPoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.Equal(t, "p@ss:word", pc.ConnConfig.Password)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(3), pc.MinConns)
	assert.Equal(t, "factory-ops", pc.ConnConfig.RuntimeParams["application_name"])
	assert.NotNil(t, pc.AfterConnect)
}

func TestBuildPoolConfig_URLTienePrioridad(t *testing.T) {
	pc, err := buildPoolConfig(config.DBConfig{
		DatabaseURL: "postgres://u:p@db.internal:6543/prod?sslmode=disable",
		Host:        "ignorado",
		MinConns:    50,
	})
	require.NoError(t, err)
	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Equal(t, "prod", pc.ConnConfig.Database)
	assert.Equal(t, int32(25), pc.MaxConns)
	assert.NotEqual(t, int32(50), pc.MinConns, "MinConns no supera MaxConns")
}

func TestResolveIPv4_Literales(t *testing.T) {
	ip, err := resolveIPv4(context.Background(), "10.0.0.7", "")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = resolveIPv4(context.Background(), "::1", "")
	assert.ErrorIs(t, err, errNoIPv4)
}
