package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/agentcommerce/types"
)

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var e *types.Error
	require.True(t, errors.As(err, &e), "expected *types.Error, got %T", err)
	return e.Code
}

func TestParseConfigYAML(t *testing.T) {
	data := []byte(`
log_level: debug
log_format: console
enable_metrics: true
default_scenario: escalation
merchant:
  capabilities: [checkout, identity]
  handlers: [stripe]
server:
  addr: ":9090"
  shutdown_timeout: 2s
`)
	cfg, err := ParseConfig(data, FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.EnableMetrics)
	assert.Equal(t, types.ScenarioEscalation, cfg.DefaultScenario)
	assert.Equal(t, []types.CapabilityID{types.CapabilityCheckout, types.CapabilityIdentity}, cfg.Merchant.Capabilities)
	assert.Equal(t, []types.HandlerID{types.HandlerStripe}, cfg.Merchant.Handlers)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)

	defaults := types.DefaultConfig()
	assert.Equal(t, defaults.Agent, cfg.Agent, "omitted sections keep their defaults")
	assert.Equal(t, defaults.Server.ReadTimeout, cfg.Server.ReadTimeout)
}

func TestParseConfigJSON(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"logLevel":"warn","agent":{"capabilities":["checkout"],"handlers":["paypal"]}}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []types.HandlerID{types.HandlerPayPal}, cfg.Agent.Handlers)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{name: "unknown yaml field", data: "colour: blue\n", format: FormatYAML},
		{name: "unknown json field", data: `{"colour":"blue"}`, format: FormatJSON},
		{name: "bad log level", data: "log_level: loud\n", format: FormatYAML},
		{name: "bad log format", data: "log_format: xml\n", format: FormatYAML},
		{name: "unknown capability", data: "merchant:\n  capabilities: [teleport]\n", format: FormatYAML},
		{name: "unknown handler", data: `{"agent":{"handlers":["cash"]}}`, format: FormatJSON},
		{name: "duplicate handler", data: "agent:\n  handlers: [stripe, stripe]\n", format: FormatYAML},
		{name: "unknown scenario", data: "default_scenario: refund\n", format: FormatYAML},
		{name: "empty addr", data: "server:\n  addr: \"\"\n", format: FormatYAML},
		{name: "malformed", data: "{", format: FormatJSON},
		{name: "unsupported format", data: "", format: "toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Equal(t, types.ErrInvalidConfig, errorCode(t, err))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agentcommerce.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: error\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, types.ErrInvalidConfig, errorCode(t, err))

	_, err = LoadConfig(filepath.Join(dir, "config.toml"))
	assert.Equal(t, types.ErrInvalidConfig, errorCode(t, err))
}

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection([]byte("capabilities: [checkout]\nhandlers: [google_pay, apple_pay]\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []types.CapabilityID{types.CapabilityCheckout}, sel.Capabilities)
	assert.Len(t, sel.Handlers, 2)

	_, err = ParseSelection([]byte(`{"capabilities":["teleport"]}`), FormatJSON)
	assert.Equal(t, types.ErrInvalidInput, errorCode(t, err))

	_, err = ParseSelection([]byte(`{"roles":[]}`), FormatJSON)
	assert.Equal(t, types.ErrInvalidInput, errorCode(t, err))
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]string{
		"a.json": FormatJSON,
		"a.YAML": FormatYAML,
		"a.yml":  FormatYAML,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := FormatFromPath("a.ini")
	assert.Error(t, err)
}

func TestNormalizeJSON(t *testing.T) {
	out, err := NormalizeJSON(map[string]string{"note": "<b> & </b>", "a": "x"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": \"x\",\n  \"note\": \"<b> & </b>\"\n}", string(out))

	_, err = NormalizeJSON(make(chan int))
	assert.Error(t, err)
}

func TestCompactJSON(t *testing.T) {
	out, err := CompactJSON([]byte("{\n  \"a\": 1\n}"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(out))

	_, err = CompactJSON([]byte("{\"a\":"))
	assert.Error(t, err)
}
