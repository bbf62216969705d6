package connector

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopea.xyz/smart-house-service/pkg/models"
)

func TestSimLifecycle(t *testing.T) {
	sim := NewSim(models.DeviceTypeLamp, "10.0.0.1", 8080)

	assert.False(t, sim.IsConnected())

	require.NoError(t, sim.Connect())
	assert.True(t, sim.IsConnected())

	require.NoError(t, sim.Disconnect())
	assert.False(t, sim.IsConnected())
}

func TestSimSend(t *testing.T) {
	sim := NewSim(models.DeviceTypeRGBLamp, "10.0.0.1", 8080)

	_, err := sim.Send(map[string]string{"state": "on"})
	assert.Error(t, err, "send before connect should fail")

	require.NoError(t, sim.Connect())

	applied, err := sim.Send(map[string]string{"state": "on", "color": "red"})
	require.NoError(t, err)
	assert.Equal(t, "on", applied["state"])
	assert.Equal(t, "red", applied["color"])

	snapshot := sim.Snapshot()
	assert.Equal(t, "on", snapshot["state"])
	assert.Equal(t, "red", snapshot["color"])

	// snapshot is a copy
	snapshot["state"] = "off"
	assert.Equal(t, "on", sim.Snapshot()["state"])
}

func TestSimFaultInjection(t *testing.T) {
	sim := NewSim(models.DeviceTypeDoor, "10.0.0.2", 9000)
	require.NoError(t, sim.Connect())

	sim.InjectFault(fmt.Errorf("transport broke"))
	err := sim.Disconnect()
	assert.EqualError(t, err, "transport broke")
	assert.True(t, sim.IsConnected(), "failed disconnect should leave transport up")

	// fault is one-shot
	assert.NoError(t, sim.Disconnect())
}

func TestStoreEnsure(t *testing.T) {
	store := NewSimStore()
	deviceID := uuid.NewString()

	first := store.Ensure(deviceID, models.DeviceTypeLamp, "10.0.0.1", 8080)
	second := store.Ensure(deviceID, models.DeviceTypeLamp, "10.0.0.1", 8080)
	assert.Same(t, first.(*Sim), second.(*Sim))

	store.Remove(deviceID)
	_, exists := store.Get(deviceID)
	assert.False(t, exists)
}

func TestStoreConcurrency(t *testing.T) {
	store := NewSimStore()
	deviceID := uuid.NewString()

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := store.Ensure(deviceID, models.DeviceTypeWindow, "10.0.0.3", 7000)
			if conn == nil {
				t.Error("expected connector, got nil")
			}
		}()
	}
	wg.Wait()

	_, exists := store.Get(deviceID)
	assert.True(t, exists)
}
