package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env
	c := Load()

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, 120*time.Second, c.PlanTimeout)
	assert.Equal(t, 30*time.Second, c.SourceTimeout)
	assert.Equal(t, 3, c.Attempts)
	assert.Equal(t, 2*time.Second, c.Backoff)
	assert.Equal(t, "₹", c.Currency)
	assert.Equal(t, "llama3-70b-8192", c.LLMModel)
	assert.Empty(t, c.LLMKey)
	assert.Equal(t, 98.0, c.Cost.FuelPricePerLiter)
	assert.Equal(t, 500.0, c.Cost.LocalTransportPerDay)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PLAN_TIMEOUT_SECONDS", "45")
	t.Setenv("ACQUIRE_BACKOFF_MS", "250")
	t.Setenv("ACQUIRE_ATTEMPTS", "oops")
	t.Setenv("LLM_API_KEY", "secret")
	t.Setenv("CAR_MILEAGE_KMPL", "12.5")
	t.Setenv("HOTELS_MMT_URL", "http://mmt.local")

	c := Load()
	assert.Equal(t, 45*time.Second, c.PlanTimeout)
	assert.Equal(t, 250*time.Millisecond, c.Backoff)
	assert.Equal(t, 3, c.Attempts, "unparseable values keep the default")
	assert.Equal(t, "secret", c.LLMKey)
	assert.Equal(t, 12.5, c.Cost.MileageKMPL)
	assert.Equal(t, "http://mmt.local", c.HotelsMMT)
}
