package house

import (
	"go.uber.org/zap"
	"gopea.xyz/smart-house-service/pkg/catalog"
	"gopea.xyz/smart-house-service/pkg/common"
	"gopea.xyz/smart-house-service/pkg/models"
)

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// updatePool applies one membership/config patch. Adds are validated
// all-or-nothing before anything is written: every id must name an existing
// device of the pool's type that is not pooled elsewhere, and pools may not
// nest. Removing an id that is not a member is a no-op. An update_time in
// the patch is fanned out to the resulting membership.
func (i *House) updatePool(poolID string, update PoolUpdate) (*models.DevicePool, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHouseCore,
		zap.String(common.LoggerFieldHouseCategory, common.LoggerCategoryPool),
	)

	if len(update.Add) == 0 && len(update.Remove) == 0 && update.UpdateTime == nil {
		return nil, NewValidationError("empty update is invalid")
	}
	if update.UpdateTime != nil {
		if err := catalog.ValidateUpdateTime(*update.UpdateTime); err != nil {
			return nil, NewValidationError("%s", err.Error())
		}
	}

	unlock := i.lockEntity(poolID)
	defer unlock()

	pool, err := i.getPool(poolID)
	if err != nil {
		return nil, err
	}

	// validate adds before mutating anything
	for _, id := range update.Add {
		device, err := i.getDevice(id)
		if err != nil {
			if _, poolErr := i.getPool(id); poolErr == nil {
				return nil, NewTypeMismatchError("a pool cannot be a member of another pool")
			}
			return nil, NewTypeMismatchError("device with id: %s doesn't exist", id)
		}
		if device.Type != pool.Type {
			return nil, NewTypeMismatchError(
				"you can add only devices with type %s to this pool", pool.Type)
		}
		if device.PoolID != "" && device.PoolID != poolID {
			return nil, NewTypeMismatchError(
				"device %s already belongs to pool %s", id, device.PoolID)
		}
	}

	for _, id := range update.Remove {
		if !containsID(pool.Members, id) {
			continue
		}
		members := make([]string, 0, len(pool.Members))
		for _, memberID := range pool.Members {
			if memberID != id {
				members = append(members, memberID)
			}
		}
		pool.Members = members

		memberUnlock := i.lockEntity(id)
		if device, err := i.getDevice(id); err == nil && device.PoolID == poolID {
			device.PoolID = ""
			if err := i.Db.Conn.Save(device).Error; err != nil {
				memberUnlock()
				return nil, err
			}
		}
		memberUnlock()
	}

	for _, id := range update.Add {
		if containsID(pool.Members, id) {
			continue
		}
		memberUnlock := i.lockEntity(id)
		device, err := i.getDevice(id)
		if err != nil {
			memberUnlock()
			return nil, err
		}

		// adding to a pool implicitly (re)connects the member
		conn := i.Connectors.Ensure(device.ID, device.Type, device.Host, device.Port)
		if err := conn.Connect(); err == nil {
			device.Status = models.StateConnected
		}
		device.PoolID = poolID
		if err := i.Db.Conn.Save(device).Error; err != nil {
			memberUnlock()
			return nil, err
		}
		memberUnlock()

		pool.Members = append(pool.Members, id)
	}

	if update.UpdateTime != nil {
		for _, memberID := range pool.Members {
			memberUnlock := i.lockEntity(memberID)
			device, err := i.getDevice(memberID)
			if err != nil {
				memberUnlock()
				continue
			}
			device.UpdateTime = *update.UpdateTime
			if err := i.Db.Conn.Save(device).Error; err != nil {
				memberUnlock()
				return nil, err
			}
			if i.Sampler != nil {
				i.Sampler.Arm(memberID, device.UpdateTime)
			}
			memberUnlock()
		}
	}

	if err := i.Db.Conn.Save(pool).Error; err != nil {
		return nil, err
	}

	logger.Info("Updated pool",
		zap.String("id", poolID),
		zap.Int("added", len(update.Add)),
		zap.Int("removed", len(update.Remove)),
		zap.Int("members", len(pool.Members)))
	return pool, nil
}

type IPoolImpl struct {
	house *House
}

func (ip *IPoolImpl) Update(poolID string, update PoolUpdate) (*models.DevicePool, error) {
	return ip.house.updatePool(poolID, update)
}

func (ip *IPoolImpl) Add(poolID string, memberIDs []string) (*models.DevicePool, error) {
	return ip.house.updatePool(poolID, PoolUpdate{Add: memberIDs})
}

func (ip *IPoolImpl) Remove(poolID string, memberIDs []string) (*models.DevicePool, error) {
	return ip.house.updatePool(poolID, PoolUpdate{Remove: memberIDs})
}

func (i *House) GetIPool() IPool {
	return &IPoolImpl{house: i}
}
