package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	c := &Config{}
	c.Default()
	assert.Equal(t, "info", c.Level)
	assert.Equal(t, OutputStderr, c.Output)
	assert.NoError(t, c.Validate())

	assert.Error(t, (&Config{Level: "loud", Output: OutputStdout}).Validate())
	assert.Error(t, (&Config{Level: "info", Output: "syslog"}).Validate())
}

func TestInit(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, Init(&Config{Level: "warn"}, WithWriter(buf)))

	Info().Msg("hidden")
	Warn().Int("tokens", 3).Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"tokens":3`)
	assert.Contains(t, buf.String(), `"message":"shown"`)

	assert.Error(t, Init(&Config{Level: "loud"}))
}
