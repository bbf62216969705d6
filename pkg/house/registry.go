package house

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gopea.xyz/smart-house-service/pkg/catalog"
	"gopea.xyz/smart-house-service/pkg/common"
	"gopea.xyz/smart-house-service/pkg/models"
)

func (i *House) createDevice(input *CreateDeviceInput) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHouseCore,
		zap.String(common.LoggerFieldHouseCategory, common.LoggerCategoryRegistry),
	)

	spec, known := catalog.Lookup(input.Type)
	if !known {
		return nil, NewValidationError("unknown device_type %q", input.Type)
	}
	if err := catalog.ValidateUpdateTime(input.UpdateTime); err != nil {
		return nil, NewValidationError("%s", err.Error())
	}
	if spec.Networked && input.Host == "" {
		return nil, NewValidationError("host is required for device_type %q", input.Type)
	}

	device := &models.Device{
		ID:         uuid.NewString(),
		Type:       input.Type,
		Host:       input.Host,
		Port:       input.Port,
		UpdateTime: input.UpdateTime,
		Status:     models.StateConnected,
		Data:       catalog.DefaultData(input.Type),
	}

	conn := i.Connectors.Ensure(device.ID, device.Type, device.Host, device.Port)
	if err := conn.Connect(); err != nil {
		i.Connectors.Remove(device.ID)
		return nil, NewUnavailableError("device %s:%d refused connection: %s", device.Host, device.Port, err.Error())
	}

	if err := i.Db.Conn.Create(device).Error; err != nil {
		return nil, err
	}

	if i.Sampler != nil {
		i.Sampler.Arm(device.ID, device.UpdateTime)
	}

	logger.Info("Created device", zap.String("id", device.ID), zap.String("device_type", string(device.Type)))
	return device, nil
}

func (i *House) createPool(input *CreatePoolInput) (*models.DevicePool, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHouseCore,
		zap.String(common.LoggerFieldHouseCategory, common.LoggerCategoryRegistry),
	)

	if !catalog.KnownType(input.Type) {
		return nil, NewValidationError("unknown device_type %q", input.Type)
	}

	pool := &models.DevicePool{
		ID:      uuid.NewString(),
		Type:    input.Type,
		Status:  models.StateConnected,
		Members: []string{},
	}

	if err := i.Db.Conn.Create(pool).Error; err != nil {
		return nil, err
	}

	logger.Info("Created pool", zap.String("id", pool.ID), zap.String("device_type", string(pool.Type)))
	return pool, nil
}

func (i *House) getDevice(id string) (*models.Device, error) {
	var device models.Device
	if err := i.Db.Conn.First(&device, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(id)
		}
		return nil, err
	}
	return &device, nil
}

func (i *House) getPool(id string) (*models.DevicePool, error) {
	var pool models.DevicePool
	if err := i.Db.Conn.First(&pool, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(id)
		}
		return nil, err
	}
	return &pool, nil
}

func (i *House) listDevices(deviceType models.DeviceType) ([]models.Device, error) {
	var devices []models.Device
	query := i.Db.Conn
	if deviceType != "" {
		query = query.Where("type = ?", deviceType)
	}
	if err := query.Order("id").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (i *House) listPools() ([]models.DevicePool, error) {
	var pools []models.DevicePool
	if err := i.Db.Conn.Order("id").Find(&pools).Error; err != nil {
		return nil, err
	}
	return pools, nil
}

// modifyDevice updates device_properties. It is accepted in any connection
// state and only validates bounds; the sampler cadence is re-armed live.
func (i *House) modifyDevice(id string, updateTime int) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHouseCore,
		zap.String(common.LoggerFieldHouseCategory, common.LoggerCategoryRegistry),
	)

	if err := catalog.ValidateUpdateTime(updateTime); err != nil {
		return nil, NewValidationError("%s", err.Error())
	}

	unlock := i.lockEntity(id)
	defer unlock()

	device, err := i.getDevice(id)
	if err != nil {
		return nil, err
	}

	device.UpdateTime = updateTime
	if err := i.Db.Conn.Save(device).Error; err != nil {
		return nil, err
	}

	if i.Sampler != nil {
		i.Sampler.Arm(device.ID, device.UpdateTime)
	}

	logger.Info("Modified device", zap.String("id", id), zap.Int("update_time", updateTime))
	return device, nil
}

// deleteEntity removes a device or a pool. Deleting a device stops its
// sampler, discards its history, detaches it from its pool and drops its
// connector. Deleting a pool never touches the member devices.
func (i *House) deleteEntity(id string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHouseCore,
		zap.String(common.LoggerFieldHouseCategory, common.LoggerCategoryRegistry),
	)

	if pool, err := i.getPool(id); err == nil {
		unlock := i.lockEntity(id)
		defer unlock()

		if _, err := i.getPool(id); err != nil {
			return err
		}
		if err := i.Db.Conn.Model(&models.Device{}).Where("pool_id = ?", id).Update("pool_id", "").Error; err != nil {
			return err
		}
		if err := i.Db.Conn.Delete(&models.DevicePool{}, "id = ?", id).Error; err != nil {
			return err
		}
		logger.Info("Deleted pool", zap.String("id", id), zap.Int("members_detached", len(pool.Members)))
		return nil
	}

	// Lock order is pool before member, so resolve the owning pool before
	// taking the device lock. Retry when the membership moved in between.
	for range 3 {
		device, err := i.getDevice(id)
		if err != nil {
			return err
		}

		var unlockPool func()
		if device.PoolID != "" {
			unlockPool = i.lockEntity(device.PoolID)
		}
		unlock := i.lockEntity(id)

		current, err := i.getDevice(id)
		if err != nil {
			unlock()
			if unlockPool != nil {
				unlockPool()
			}
			return err
		}
		if current.PoolID != device.PoolID {
			unlock()
			if unlockPool != nil {
				unlockPool()
			}
			continue
		}

		err = i.removeDeviceLocked(current)
		unlock()
		if unlockPool != nil {
			unlockPool()
		}
		if err != nil {
			return err
		}
		logger.Info("Deleted device", zap.String("id", id))
		return nil
	}
	return NewNotFoundError(id)
}

func (i *House) removeDeviceLocked(device *models.Device) error {
	if device.PoolID != "" {
		var pool models.DevicePool
		if err := i.Db.Conn.First(&pool, "id = ?", device.PoolID).Error; err == nil {
			members := make([]string, 0, len(pool.Members))
			for _, memberID := range pool.Members {
				if memberID != device.ID {
					members = append(members, memberID)
				}
			}
			pool.Members = members
			if err := i.Db.Conn.Save(&pool).Error; err != nil {
				return err
			}
		}
	}

	if err := i.Db.Conn.Delete(&models.Device{}, "id = ?", device.ID).Error; err != nil {
		return err
	}

	if i.Sampler != nil {
		i.Sampler.Drop(device.ID)
	}
	i.Connectors.Remove(device.ID)
	return nil
}

type IRegistryImpl struct {
	house *House
}

func (ir *IRegistryImpl) CreateDevice(input *CreateDeviceInput) (*models.Device, error) {
	return ir.house.createDevice(input)
}

func (ir *IRegistryImpl) CreatePool(input *CreatePoolInput) (*models.DevicePool, error) {
	return ir.house.createPool(input)
}

func (ir *IRegistryImpl) GetDevice(id string) (*models.Device, error) {
	return ir.house.getDevice(id)
}

func (ir *IRegistryImpl) GetPool(id string) (*models.DevicePool, error) {
	return ir.house.getPool(id)
}

func (ir *IRegistryImpl) ListDevices(deviceType models.DeviceType) ([]models.Device, error) {
	return ir.house.listDevices(deviceType)
}

func (ir *IRegistryImpl) ListPools() ([]models.DevicePool, error) {
	return ir.house.listPools()
}

func (ir *IRegistryImpl) ModifyDevice(id string, updateTime int) (*models.Device, error) {
	return ir.house.modifyDevice(id, updateTime)
}

func (ir *IRegistryImpl) Delete(id string) error {
	return ir.house.deleteEntity(id)
}

func (i *House) GetIRegistry() IRegistry {
	return &IRegistryImpl{house: i}
}
