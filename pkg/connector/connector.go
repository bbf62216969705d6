// Package connector models the transport between the service and a physical
// appliance. The engine only needs connect/disconnect/send semantics; the
// shipped implementation is an in-process simulator holding the device-side
// payload, standing in for real hardware.
package connector

import (
	"fmt"
	"sync"

	"gopea.xyz/smart-house-service/pkg/catalog"
	"gopea.xyz/smart-house-service/pkg/models"
)

type Connector interface {
	Connect() error
	Disconnect() error
	IsConnected() bool
	// Send applies an already-filtered command to the device and returns the
	// fields actually applied.
	Send(command map[string]string) (map[string]string, error)
	// Snapshot returns a copy of the device-side payload.
	Snapshot() map[string]string
}

// Sim is a simulated appliance. InjectFault makes the next operation fail,
// which is how tests drive the Error state.
type Sim struct {
	mu        sync.Mutex
	host      string
	port      int
	connected bool
	data      map[string]string
	nextFault error
}

func NewSim(deviceType models.DeviceType, host string, port int) *Sim {
	return &Sim{
		host: host,
		port: port,
		data: catalog.DefaultData(deviceType),
	}
}

func (s *Sim) InjectFault(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextFault = err
}

func (s *Sim) takeFault() error {
	fault := s.nextFault
	s.nextFault = nil
	return fault
}

func (s *Sim) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fault := s.takeFault(); fault != nil {
		return fault
	}
	s.connected = true
	return nil
}

func (s *Sim) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fault := s.takeFault(); fault != nil {
		return fault
	}
	s.connected = false
	return nil
}

func (s *Sim) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Sim) Send(command map[string]string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fault := s.takeFault(); fault != nil {
		return nil, fault
	}
	if !s.connected {
		return nil, fmt.Errorf("device %s:%d is not connected", s.host, s.port)
	}
	applied := make(map[string]string, len(command))
	for field, value := range command {
		s.data[field] = value
		applied[field] = value
	}
	return applied, nil
}

func (s *Sim) Snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(map[string]string, len(s.data))
	for k, v := range s.data {
		snapshot[k] = v
	}
	return snapshot
}
