package house_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopea.xyz/smart-house-service/pkg/db"
	. "gopea.xyz/smart-house-service/pkg/house"
	"gopea.xyz/smart-house-service/pkg/house/mocks"
	"gopea.xyz/smart-house-service/pkg/models"
)

func GetMockHouseWithMemorySqliteDialector(t *testing.T, useMockSampler bool) (
	*gomock.Controller,
	*House,
	*mocks.MockISampler,
) {
	ctrl := gomock.NewController(t)

	mockSampler := mocks.NewMockISampler(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations

	houseInstance := New(*dbInstance)
	houseInstance.SamplerTick = time.Millisecond
	houseInstance.WithDefaultServices()

	if useMockSampler {
		houseInstance.Sampler = mockSampler
	}

	return ctrl, houseInstance, mockSampler
}

func mustCreateDevice(t *testing.T, h *House, deviceType models.DeviceType, updateTime int) *models.Device {
	t.Helper()
	device, err := h.Registry.CreateDevice(&CreateDeviceInput{
		Type:       deviceType,
		Host:       "10.0.0.1",
		Port:       8080,
		UpdateTime: updateTime,
	})
	require.NoError(t, err)
	return device
}

func mustCreatePool(t *testing.T, h *House, deviceType models.DeviceType) *models.DevicePool {
	t.Helper()
	pool, err := h.Registry.CreatePool(&CreatePoolInput{Type: deviceType})
	require.NoError(t, err)
	return pool
}
