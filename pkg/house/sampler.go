package house

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopea.xyz/smart-house-service/pkg/common"
	"gopea.xyz/smart-house-service/pkg/models"
)

// maxMetrics caps the per-device history; the ring evicts oldest-first.
const maxMetrics = 100

type metricRing struct {
	mu      sync.Mutex
	samples []models.MetricSample
}

func (r *metricRing) append(sample models.MetricSample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, sample)
	if len(r.samples) > maxMetrics {
		r.samples = r.samples[len(r.samples)-maxMetrics:]
	}
}

// snapshot returns a copy, oldest first (most-recent-last).
func (r *metricRing) snapshot() []models.MetricSample {
	r.mu.Lock()
	defer r.mu.Unlock()
	samples := make([]models.MetricSample, len(r.samples))
	copy(samples, r.samples)
	return samples
}

// samplerTable is the process-wide job table: device_id -> periodic job and
// its history ring. Jobs are cancelled via context; rings outlive re-arms so
// a cadence change never clears history.
type samplerTable struct {
	mu    sync.Mutex
	jobs  map[string]context.CancelFunc
	rings map[string]*metricRing
}

func newSamplerTable() *samplerTable {
	return &samplerTable{
		jobs:  make(map[string]context.CancelFunc),
		rings: make(map[string]*metricRing),
	}
}

func (t *samplerTable) stop(deviceID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cancel, exists := t.jobs[deviceID]; exists {
		cancel()
		delete(t.jobs, deviceID)
	}
}

func (t *samplerTable) set(deviceID string, cancel context.CancelFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, exists := t.jobs[deviceID]; exists {
		prev()
	}
	t.jobs[deviceID] = cancel
}

func (t *samplerTable) ring(deviceID string) *metricRing {
	t.mu.Lock()
	defer t.mu.Unlock()
	ring, exists := t.rings[deviceID]
	if !exists {
		ring = &metricRing{}
		t.rings[deviceID] = ring
	}
	return ring
}

func (t *samplerTable) drop(deviceID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cancel, exists := t.jobs[deviceID]; exists {
		cancel()
		delete(t.jobs, deviceID)
	}
	delete(t.rings, deviceID)
}

// armSampler (re)starts the periodic job for a device. update_time 0
// disables sampling; any running job is cancelled either way. Existing
// history is kept across re-arms.
func (i *House) armSampler(deviceID string, updateTime int) {
	logger := common.GetLoggerWith(
		common.LoggerNameHouseCore,
		zap.String(common.LoggerFieldHouseCategory, common.LoggerCategorySampler),
	)

	i.jobs.stop(deviceID)
	if updateTime <= 0 {
		logger.Info("Sampling disabled", zap.String("id", deviceID))
		return
	}

	tick := i.SamplerTick
	if tick <= 0 {
		tick = time.Second
	}
	interval := time.Duration(updateTime) * tick

	ctx, cancel := context.WithCancel(context.Background())
	i.jobs.set(deviceID, cancel)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				i.captureSample(deviceID)
			}
		}
	}()

	logger.Info("Sampler armed", zap.String("id", deviceID), zap.Int("update_time", updateTime))
}

// captureSample records one snapshot. Ticks while the device is not
// Connected are skipped, the job itself stays armed.
func (i *House) captureSample(deviceID string) {
	var device models.Device
	if err := i.Db.Conn.First(&device, "id = ?", deviceID).Error; err != nil {
		return
	}
	if device.Status != models.StateConnected {
		return
	}
	conn, exists := i.Connectors.Get(deviceID)
	if !exists {
		return
	}
	i.jobs.ring(deviceID).append(models.MetricSample{
		Time:   time.Now(),
		Status: device.Status,
		Data:   conn.Snapshot(),
	})
}

func (i *House) samplerMetrics(deviceID string) []models.MetricSample {
	return i.jobs.ring(deviceID).snapshot()
}

type ISamplerImpl struct {
	house *House
}

func (is *ISamplerImpl) Arm(deviceID string, updateTime int) {
	is.house.armSampler(deviceID, updateTime)
}

func (is *ISamplerImpl) Drop(deviceID string) {
	is.house.jobs.drop(deviceID)
}

func (is *ISamplerImpl) Metrics(deviceID string) []models.MetricSample {
	return is.house.samplerMetrics(deviceID)
}

func (i *House) GetISampler() ISampler {
	return &ISamplerImpl{house: i}
}
