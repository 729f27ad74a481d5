package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppConfig_Location(t *testing.T) {
	cases := map[string]string{
		"America/Bogota": "America/Bogota",
		"Asia/Dhaka":     "Asia/Dhaka",
		"":               "UTC",
		"Local":          "UTC",
		"no/existe":      "UTC",
	}
	for tz, want := range cases {
		t.Run(tz, func(t *testing.T) {
			loc := AppConfig{Timezone: tz}.Location()
			assert.Equal(t, want, loc.String())
			assert.NotSame(t, time.Local, loc)
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	cfg := DBConfig{Host: "db", Port: 5432, User: "ops", Password: "s3cr@t", DBName: "factory_ops", SSLMode: "disable"}
	assert.Equal(t, "postgres://ops:s3cr%40t@db:5432/factory_ops?sslmode=disable", cfg.ConnectionString())

	cfg.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", cfg.ConnectionString())
}
