package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-consola/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, config.GatewayRemote, cfg.Gateway.Driver)
	assert.Equal(t, 100, cfg.Gateway.PageSize)
	assert.Equal(t, 15*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "S/.", cfg.Report.CurrencySymbol)
	assert.Equal(t, 4, cfg.Import.Concurrency)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_LeeValoresComoString(t *testing.T) {
	v := viper.New()
	v.Set("GATEWAY_DRIVER", "POSTGRES")
	v.Set("GATEWAY_BASE_URL", "https://api.local/api/")
	v.Set("HTTP_PORT", "9090")
	v.Set("IMPORT_CONCURRENCY", "0")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, config.GatewayPostgres, cfg.Gateway.Driver)
	assert.Equal(t, "https://api.local/api", cfg.Gateway.BaseURL, "se elimina la barra final")
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 1, cfg.Import.Concurrency, "concurrencia mínima 1")
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("GATEWAY_DRIVER", "mongo")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/inv?sslmode=disable", c.ConnectionString())
}

func TestReportConfig_LocationInvalidaUsaLocal(t *testing.T) {
	c := config.ReportConfig{Timezone: "Zona/Inexistente"}
	assert.Equal(t, time.Local, c.Location())
}
