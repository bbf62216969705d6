package house

import (
	"time"

	"gopea.xyz/smart-house-service/pkg/connector"
	"gopea.xyz/smart-house-service/pkg/db"
	"gopea.xyz/smart-house-service/pkg/models"
)

type CreateDeviceInput struct {
	Type       models.DeviceType
	Host       string
	Port       int
	UpdateTime int
}

type CreatePoolInput struct {
	Type models.DeviceType
}

// PoolUpdate is one membership/config patch. Add and Remove carry member
// device ids; UpdateTime, when set, is fanned out to the resulting members.
type PoolUpdate struct {
	Add        []string
	Remove     []string
	UpdateTime *int
}

type IRegistry interface {
	CreateDevice(input *CreateDeviceInput) (*models.Device, error)
	CreatePool(input *CreatePoolInput) (*models.DevicePool, error)
	GetDevice(id string) (*models.Device, error)
	GetPool(id string) (*models.DevicePool, error)
	ListDevices(deviceType models.DeviceType) ([]models.Device, error)
	ListPools() ([]models.DevicePool, error)
	ModifyDevice(id string, updateTime int) (*models.Device, error)
	Delete(id string) error
}

type IPool interface {
	Update(poolID string, update PoolUpdate) (*models.DevicePool, error)
	Add(poolID string, memberIDs []string) (*models.DevicePool, error)
	Remove(poolID string, memberIDs []string) (*models.DevicePool, error)
}

type IDispatcher interface {
	Connect(id string) (*DispatchResult, error)
	Disconnect(id string) (*DispatchResult, error)
	Reboot(id string) (*DispatchResult, error)
	PowerOff(id string) (*DispatchResult, error)
	Execute(id string, command map[string]string) (*DispatchResult, error)
	Metrics(id string) (*MetricsResult, error)
}

type ISampler interface {
	Arm(deviceID string, updateTime int)
	Drop(deviceID string)
	Metrics(deviceID string) []models.MetricSample
}

type House struct {
	Db         db.DB
	Connectors *connector.Store

	Registry   IRegistry
	Pool       IPool
	Dispatcher IDispatcher
	Sampler    ISampler

	// SamplerTick is the duration of one update_time unit. Production keeps
	// the default second; tests shrink it.
	SamplerTick time.Duration

	locks *entityLockStore
	jobs  *samplerTable
}

func New(dbInstance db.DB) *House {
	return &House{
		Db:          dbInstance,
		Connectors:  connector.NewSimStore(),
		SamplerTick: time.Second,
		locks:       newEntityLockStore(),
		jobs:        newSamplerTable(),
	}
}

type ServiceOpts struct {
	Registry   IRegistry
	Pool       IPool
	Dispatcher IDispatcher
	Sampler    ISampler
}

func (i *House) WithServices(opts ServiceOpts) *House {
	if opts.Registry != nil {
		i.Registry = opts.Registry
	}
	if opts.Pool != nil {
		i.Pool = opts.Pool
	}
	if opts.Dispatcher != nil {
		i.Dispatcher = opts.Dispatcher
	}
	if opts.Sampler != nil {
		i.Sampler = opts.Sampler
	}
	return i
}

// WithDefaultServices wires every service to its in-house implementation.
func (i *House) WithDefaultServices() *House {
	return i.WithServices(ServiceOpts{
		Registry:   i.GetIRegistry(),
		Pool:       i.GetIPool(),
		Dispatcher: i.GetIDispatcher(),
		Sampler:    i.GetISampler(),
	})
}
