package house_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopea.xyz/smart-house-service/pkg/common"
	. "gopea.xyz/smart-house-service/pkg/house"
	"gopea.xyz/smart-house-service/pkg/models"
	_ "gopea.xyz/smart-house-service/pkg/testing"
)

func waitForSamples(t *testing.T, h *House, deviceID string, atLeast int) []models.MetricSample {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		samples := h.Sampler.Metrics(deviceID)
		if len(samples) >= atLeast {
			return samples
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d samples on device %s", atLeast, deviceID)
	return nil
}

func TestSamplerCapturesData(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	device := mustCreateDevice(t, h, models.DeviceTypeLamp, 1)

	samples := waitForSamples(t, h, device.ID, 3)
	for _, sample := range samples {
		assert.Equal(t, models.StateConnected, sample.Status)
		assert.Equal(t, "off", sample.Data["state"])
		assert.False(t, sample.Time.IsZero())
	}

	// oldest first
	for idx := 1; idx < len(samples); idx++ {
		assert.False(t, samples[idx].Time.Before(samples[idx-1].Time))
	}
}

func TestSamplerRingSaturates(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	device := mustCreateDevice(t, h, models.DeviceTypeLamp, 1)

	waitForSamples(t, h, device.ID, MaxMetrics)

	// keep sampling well past the cap; the ring must not grow
	time.Sleep(50 * time.Millisecond)
	samples := h.Sampler.Metrics(device.ID)
	assert.Len(t, samples, MaxMetrics, "history is capped, oldest evicted first")
}

func TestSamplerDisabledAtZero(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	device := mustCreateDevice(t, h, models.DeviceTypeLamp, 0)

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, h.Sampler.Metrics(device.ID))
}

func TestSamplerRearmKeepsHistory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	device := mustCreateDevice(t, h, models.DeviceTypeLamp, 1)

	existing := waitForSamples(t, h, device.ID, 2)

	_, err := h.Registry.ModifyDevice(device.ID, 2)
	require.NoError(t, err)

	samples := h.Sampler.Metrics(device.ID)
	assert.GreaterOrEqual(t, len(samples), len(existing), "re-arm must not clear history")
}

func TestSamplerSkipsWhileDisconnected(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	device := mustCreateDevice(t, h, models.DeviceTypeLamp, 1)
	waitForSamples(t, h, device.ID, 1)

	_, err := h.Dispatcher.Disconnect(device.ID)
	require.NoError(t, err)

	count := len(h.Sampler.Metrics(device.ID))
	time.Sleep(30 * time.Millisecond)
	later := len(h.Sampler.Metrics(device.ID))
	assert.LessOrEqual(t, later, count+1, "ticks while disconnected are skipped")
}

func TestSamplerDropDiscardsHistory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	device := mustCreateDevice(t, h, models.DeviceTypeLamp, 1)
	waitForSamples(t, h, device.ID, 1)

	h.Sampler.Drop(device.ID)
	assert.Empty(t, h.Sampler.Metrics(device.ID))
}
