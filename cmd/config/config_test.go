package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/decomizer/storefront/cmd/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, 30, cfg.Dashboard.ReportingDays)
	assert.Equal(t, 10, cfg.Dashboard.TopProductsLimit)
	assert.Equal(t, 5*time.Minute, cfg.Dashboard.RefreshInterval)
	assert.Equal(t, "file://migrations", cfg.Database.MigrationsPath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("RABBITMQ_ENABLED", "true")
	t.Setenv("ORDER_EXPIRATION", "15m")
	t.Setenv("DASHBOARD_REPORTING_DAYS", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.True(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Order.OrderExpiration)
	assert.Equal(t, 30, cfg.Dashboard.ReportingDays)
}

func TestDSN(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Host: "db", Port: 3306, User: "shop", Password: "pw", Name: "decomizer",
	}}

	dsn := cfg.GetDSN()
	assert.True(t, strings.HasPrefix(dsn, "shop:pw@tcp(db:3306)/decomizer?"))
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")

	url := cfg.GetMigrateURL()
	assert.True(t, strings.HasPrefix(url, "mysql://shop:pw@tcp(db:3306)/decomizer"))
	assert.Contains(t, url, "multiStatements=true")
}
