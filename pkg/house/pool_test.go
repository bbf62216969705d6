package house_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gopea.xyz/smart-house-service/pkg/common"
	. "gopea.xyz/smart-house-service/pkg/house"
	"gopea.xyz/smart-house-service/pkg/models"
	_ "gopea.xyz/smart-house-service/pkg/testing"
)

func TestPoolAdd(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	pool := mustCreatePool(t, h, models.DeviceTypeLamp)
	first := mustCreateDevice(t, h, models.DeviceTypeLamp, 0)
	second := mustCreateDevice(t, h, models.DeviceTypeLamp, 0)

	updated, err := h.Pool.Add(pool.ID, []string{first.ID, second.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, second.ID}, updated.Members)

	saved, err := h.Registry.GetDevice(first.ID)
	require.NoError(t, err)
	assert.Equal(t, pool.ID, saved.PoolID)

	// duplicates are not re-added
	updated, err = h.Pool.Add(pool.ID, []string{first.ID})
	require.NoError(t, err)
	assert.Len(t, updated.Members, 2)
}

func TestPoolAdd_TypeMismatch(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	pool := mustCreatePool(t, h, models.DeviceTypeLamp)
	lamp := mustCreateDevice(t, h, models.DeviceTypeLamp, 0)
	door := mustCreateDevice(t, h, models.DeviceTypeDoor, 0)

	// one bad id rejects the entire call, membership unchanged
	_, err := h.Pool.Add(pool.ID, []string{lamp.ID, door.ID})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(err))

	saved, err := h.Registry.GetPool(pool.ID)
	require.NoError(t, err)
	assert.Empty(t, saved.Members)

	lampSaved, err := h.Registry.GetDevice(lamp.ID)
	require.NoError(t, err)
	assert.Empty(t, lampSaved.PoolID)
}

func TestPoolAdd_MissingDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	pool := mustCreatePool(t, h, models.DeviceTypeLamp)

	_, err := h.Pool.Add(pool.ID, []string{uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(err))
}

func TestPoolAdd_NoNesting(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	outer := mustCreatePool(t, h, models.DeviceTypeLamp)
	inner := mustCreatePool(t, h, models.DeviceTypeLamp)

	_, err := h.Pool.Add(outer.ID, []string{inner.ID})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(err))
}

func TestPoolAdd_ReconnectsMember(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	pool := mustCreatePool(t, h, models.DeviceTypeWindow)
	device := mustCreateDevice(t, h, models.DeviceTypeWindow, 0)

	_, err := h.Dispatcher.Disconnect(device.ID)
	require.NoError(t, err)
	saved, err := h.Registry.GetDevice(device.ID)
	require.NoError(t, err)
	require.Equal(t, models.StateDisconnected, saved.Status)

	// adding to a pool implicitly reconnects
	_, err = h.Pool.Add(pool.ID, []string{device.ID})
	require.NoError(t, err)

	saved, err = h.Registry.GetDevice(device.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateConnected, saved.Status)
}

func TestPoolRemove(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	pool := mustCreatePool(t, h, models.DeviceTypeLamp)
	first := mustCreateDevice(t, h, models.DeviceTypeLamp, 0)
	second := mustCreateDevice(t, h, models.DeviceTypeLamp, 0)

	_, err := h.Pool.Add(pool.ID, []string{first.ID, second.ID})
	require.NoError(t, err)

	updated, err := h.Pool.Remove(pool.ID, []string{first.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID}, updated.Members)

	// removed device still exists, detached
	saved, err := h.Registry.GetDevice(first.ID)
	require.NoError(t, err)
	assert.Empty(t, saved.PoolID)

	// removing an id that is not a member is a no-op
	updated, err = h.Pool.Remove(pool.ID, []string{uuid.NewString()})
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID}, updated.Members)

	// removing every member leaves an empty pool that still exists
	updated, err = h.Pool.Remove(pool.ID, []string{second.ID})
	require.NoError(t, err)
	assert.Empty(t, updated.Members)

	_, err = h.Registry.GetPool(pool.ID)
	assert.NoError(t, err)
}

func TestPoolUpdate_EmptyInvalid(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	pool := mustCreatePool(t, h, models.DeviceTypeLamp)

	_, err := h.Pool.Update(pool.ID, PoolUpdate{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestPoolUpdate_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	_, err := h.Pool.Add(uuid.NewString(), []string{uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestPoolUpdate_UpdateTimeFanOut(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, mockSampler := GetMockHouseWithMemorySqliteDialector(t, true)
	defer ctrl.Finish()

	mockSampler.EXPECT().Arm(gomock.Any(), gomock.Any()).Times(2) // creates
	pool := mustCreatePool(t, h, models.DeviceTypeLamp)
	first := mustCreateDevice(t, h, models.DeviceTypeLamp, 0)
	second := mustCreateDevice(t, h, models.DeviceTypeLamp, 0)

	_, err := h.Pool.Add(pool.ID, []string{first.ID, second.ID})
	require.NoError(t, err)

	// update_time in a pool patch re-arms every member
	mockSampler.EXPECT().Arm(gomock.Eq(first.ID), gomock.Eq(7)).Times(1)
	mockSampler.EXPECT().Arm(gomock.Eq(second.ID), gomock.Eq(7)).Times(1)

	updateTime := 7
	_, err = h.Pool.Update(pool.ID, PoolUpdate{UpdateTime: &updateTime})
	require.NoError(t, err)

	for _, id := range []string{first.ID, second.ID} {
		saved, err := h.Registry.GetDevice(id)
		require.NoError(t, err)
		assert.Equal(t, 7, saved.UpdateTime)
	}
}

func TestPoolUpdate_InvalidUpdateTime(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, h, _ := GetMockHouseWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()

	pool := mustCreatePool(t, h, models.DeviceTypeLamp)
	device := mustCreateDevice(t, h, models.DeviceTypeLamp, 3)

	_, err := h.Pool.Add(pool.ID, []string{device.ID})
	require.NoError(t, err)

	bad := -5
	_, err = h.Pool.Update(pool.ID, PoolUpdate{UpdateTime: &bad})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))

	saved, err := h.Registry.GetDevice(device.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, saved.UpdateTime, "rejected fan-out must leave members untouched")
}
