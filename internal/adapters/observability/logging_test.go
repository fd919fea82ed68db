package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "prod", "warn")
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Str("domain", "hotels").Msg("kept")
	assert.Contains(t, buf.String(), `"domain":"hotels"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)

	buf.Reset()
	l = NewLoggerTo(&buf, "dev", "bogus")
	l.Info().Msg("console")
	assert.Contains(t, buf.String(), "console")
	assert.NotContains(t, buf.String(), `"message"`)
}
