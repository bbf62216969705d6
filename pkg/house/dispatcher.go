package house

import (
	"sync"

	"go.uber.org/zap"
	"gopea.xyz/smart-house-service/pkg/catalog"
	"gopea.xyz/smart-house-service/pkg/common"
	"gopea.xyz/smart-house-service/pkg/models"
)

const (
	ActionConnected    = "connected"
	ActionDisconnected = "disconnected"
	ActionPowerOff     = "power_off"
)

// DispatchResult is the outcome of one lifecycle or execute call. A device
// target fills CommandAction or Applied; a pool target fills Responses with
// one entry per member.
type DispatchResult struct {
	CommandAction string
	Applied       map[string]string
	Responses     []MemberResult
}

type MemberResult struct {
	ID            string            `json:"id"`
	CommandAction string            `json:"command_action,omitempty"`
	Applied       map[string]string `json:"applied,omitempty"`
	Error         string            `json:"error,omitempty"`
	Status        int               `json:"status,omitempty"`
}

// JSON renders the result body for the REST surface.
func (r *DispatchResult) JSON() any {
	if r.Responses != nil {
		return map[string]any{"responses": r.Responses}
	}
	if r.CommandAction != "" {
		return map[string]string{"command_action": r.CommandAction}
	}
	return r.Applied
}

type MemberMetrics struct {
	ID      string                `json:"id"`
	Metrics []models.MetricSample `json:"metrics"`
}

type MetricsResult struct {
	Samples []models.MetricSample
	Members []MemberMetrics
}

func (r *MetricsResult) JSON() any {
	if r.Members != nil {
		return r.Members
	}
	if r.Samples == nil {
		return []models.MetricSample{}
	}
	return r.Samples
}

type deviceOp func(device *models.Device) (*DispatchResult, error)

// dispatch resolves id to a device or a pool. Device ops run under the
// entity lock; pool ops snapshot the membership under the pool lock and fan
// out concurrently, joining before returning per-member results.
func (i *House) dispatch(id string, op deviceOp) (*DispatchResult, error) {
	if pool, err := i.getPool(id); err == nil {
		unlock := i.lockEntity(id)
		members := make([]string, len(pool.Members))
		copy(members, pool.Members)
		unlock()
		return i.fanOut(members, op), nil
	}

	unlock := i.lockEntity(id)
	defer unlock()

	device, err := i.getDevice(id)
	if err != nil {
		return nil, err
	}
	return op(device)
}

// fanOut applies op to every member independently. One member's failure
// never cancels the others; the aggregate reports an outcome per member.
func (i *House) fanOut(members []string, op deviceOp) *DispatchResult {
	results := make([]MemberResult, len(members))

	var wg sync.WaitGroup
	for idx, memberID := range members {
		wg.Add(1)
		go func(idx int, memberID string) {
			defer wg.Done()

			unlock := i.lockEntity(memberID)
			defer unlock()

			device, err := i.getDevice(memberID)
			if err != nil {
				results[idx] = MemberResult{ID: memberID, Error: err.Error(), Status: HTTPStatus(err)}
				return
			}

			result, err := op(device)
			if err != nil {
				results[idx] = MemberResult{ID: memberID, Error: err.Error(), Status: HTTPStatus(err)}
				return
			}
			results[idx] = MemberResult{
				ID:            memberID,
				CommandAction: result.CommandAction,
				Applied:       result.Applied,
			}
		}(idx, memberID)
	}
	wg.Wait()

	return &DispatchResult{Responses: results}
}

func (i *House) saveStatus(device *models.Device, status models.DeviceState) error {
	device.Status = status
	return i.Db.Conn.Save(device).Error
}

// connectDevice is the only action valid from every state.
func (i *House) connectDevice(device *models.Device) (*DispatchResult, error) {
	conn := i.Connectors.Ensure(device.ID, device.Type, device.Host, device.Port)
	if err := conn.Connect(); err != nil {
		if saveErr := i.saveStatus(device, models.StateError); saveErr != nil {
			return nil, saveErr
		}
		return nil, NewUnavailableError("connect failed: %s", err.Error())
	}
	if err := i.saveStatus(device, models.StateConnected); err != nil {
		return nil, err
	}
	return &DispatchResult{CommandAction: ActionConnected}, nil
}

func (i *House) disconnectDevice(device *models.Device) (*DispatchResult, error) {
	if device.Status != models.StateConnected {
		return nil, NewUnavailableError("device %s is not connected", device.ID)
	}
	conn := i.Connectors.Ensure(device.ID, device.Type, device.Host, device.Port)
	if err := conn.Disconnect(); err != nil {
		if saveErr := i.saveStatus(device, models.StateError); saveErr != nil {
			return nil, saveErr
		}
		return nil, NewUnavailableError("disconnect failed: %s", err.Error())
	}
	if err := i.saveStatus(device, models.StateDisconnected); err != nil {
		return nil, err
	}
	return &DispatchResult{CommandAction: ActionDisconnected}, nil
}

// rebootDevice drops and re-establishes the transport; the observable state
// stays Connected.
func (i *House) rebootDevice(device *models.Device) (*DispatchResult, error) {
	if device.Status != models.StateConnected {
		return nil, NewUnavailableError("device %s is not connected", device.ID)
	}
	conn := i.Connectors.Ensure(device.ID, device.Type, device.Host, device.Port)
	if err := conn.Disconnect(); err != nil {
		if saveErr := i.saveStatus(device, models.StateError); saveErr != nil {
			return nil, saveErr
		}
		return nil, NewUnavailableError("reboot failed: %s", err.Error())
	}
	if err := conn.Connect(); err != nil {
		if saveErr := i.saveStatus(device, models.StateError); saveErr != nil {
			return nil, saveErr
		}
		return nil, NewUnavailableError("reboot failed: %s", err.Error())
	}
	if err := i.saveStatus(device, models.StateConnected); err != nil {
		return nil, err
	}
	return &DispatchResult{CommandAction: ActionConnected}, nil
}

func (i *House) powerOffDevice(device *models.Device) (*DispatchResult, error) {
	if device.Status != models.StateConnected {
		return nil, NewUnavailableError("device %s is not connected", device.ID)
	}
	conn := i.Connectors.Ensure(device.ID, device.Type, device.Host, device.Port)
	if err := conn.Disconnect(); err != nil {
		if saveErr := i.saveStatus(device, models.StateError); saveErr != nil {
			return nil, saveErr
		}
		return nil, NewUnavailableError("power off failed: %s", err.Error())
	}
	if err := i.saveStatus(device, models.StatePoweredOff); err != nil {
		return nil, err
	}
	return &DispatchResult{CommandAction: ActionPowerOff}, nil
}

// executeDevice merges accepted command fields into the device data,
// field by field. Fields the type does not declare are ignored.
func (i *House) executeDevice(device *models.Device, command map[string]string) (*DispatchResult, error) {
	if device.Status != models.StateConnected {
		return nil, NewUnavailableError("device %s is not connected", device.ID)
	}

	filtered := catalog.FilterCommand(device.Type, command)
	if err := catalog.ValidateCommand(filtered); err != nil {
		return nil, NewValidationError("%s", err.Error())
	}

	conn := i.Connectors.Ensure(device.ID, device.Type, device.Host, device.Port)
	applied, err := conn.Send(filtered)
	if err != nil {
		return nil, NewUnavailableError("execute failed: %s", err.Error())
	}

	if device.Data == nil {
		device.Data = map[string]string{}
	}
	for field, value := range applied {
		device.Data[field] = value
	}
	if err := i.Db.Conn.Save(device).Error; err != nil {
		return nil, err
	}

	return &DispatchResult{Applied: applied}, nil
}

func (i *House) metricsOf(id string) (*MetricsResult, error) {
	if pool, err := i.getPool(id); err == nil {
		unlock := i.lockEntity(id)
		members := make([]string, len(pool.Members))
		copy(members, pool.Members)
		unlock()

		aggregated := make([]MemberMetrics, len(members))
		for idx, memberID := range members {
			samples := []models.MetricSample{}
			if i.Sampler != nil {
				if memberSamples := i.Sampler.Metrics(memberID); memberSamples != nil {
					samples = memberSamples
				}
			}
			aggregated[idx] = MemberMetrics{ID: memberID, Metrics: samples}
		}
		return &MetricsResult{Members: aggregated}, nil
	}

	if _, err := i.getDevice(id); err != nil {
		return nil, err
	}
	result := &MetricsResult{Samples: []models.MetricSample{}}
	if i.Sampler != nil {
		if samples := i.Sampler.Metrics(id); samples != nil {
			result.Samples = samples
		}
	}
	return result, nil
}

type IDispatcherImpl struct {
	house *House
}

func (id *IDispatcherImpl) Connect(target string) (*DispatchResult, error) {
	return id.house.dispatchLogged("connect", target, id.house.connectDevice)
}

func (id *IDispatcherImpl) Disconnect(target string) (*DispatchResult, error) {
	return id.house.dispatchLogged("disconnect", target, id.house.disconnectDevice)
}

func (id *IDispatcherImpl) Reboot(target string) (*DispatchResult, error) {
	return id.house.dispatchLogged("reboot", target, id.house.rebootDevice)
}

func (id *IDispatcherImpl) PowerOff(target string) (*DispatchResult, error) {
	return id.house.dispatchLogged("power_off", target, id.house.powerOffDevice)
}

func (id *IDispatcherImpl) Execute(target string, command map[string]string) (*DispatchResult, error) {
	return id.house.dispatchLogged("execute", target, func(device *models.Device) (*DispatchResult, error) {
		return id.house.executeDevice(device, command)
	})
}

func (id *IDispatcherImpl) Metrics(target string) (*MetricsResult, error) {
	return id.house.metricsOf(target)
}

func (i *House) dispatchLogged(action, target string, op deviceOp) (*DispatchResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHouseCore,
		zap.String(common.LoggerFieldHouseCategory, common.LoggerCategoryDispatcher),
	)

	result, err := i.dispatch(target, op)
	if err != nil {
		logger.Info("Dispatch failed",
			zap.String("action", action), zap.String("id", target), zap.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Dispatched", zap.String("action", action), zap.String("id", target))
	return result, nil
}

func (i *House) GetIDispatcher() IDispatcher {
	return &IDispatcherImpl{house: i}
}
