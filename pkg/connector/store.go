package connector

import (
	"sync"

	"gopea.xyz/smart-house-service/pkg/models"
)

type Factory func(deviceType models.DeviceType, host string, port int) Connector

// Store manages per-device connectors: device_id -> connector. Connectors
// are runtime-only and recreated lazily after a restart.
type Store struct {
	mu         sync.Mutex
	connectors map[string]Connector
	factory    Factory
}

func NewStore(factory Factory) *Store {
	return &Store{
		connectors: make(map[string]Connector),
		factory:    factory,
	}
}

// NewSimStore builds a store backed by the simulated transport.
func NewSimStore() *Store {
	return NewStore(func(deviceType models.DeviceType, host string, port int) Connector {
		return NewSim(deviceType, host, port)
	})
}

func (s *Store) Ensure(deviceID string, deviceType models.DeviceType, host string, port int) Connector {
	s.mu.Lock()
	defer s.mu.Unlock()

	conn, exists := s.connectors[deviceID]
	if !exists {
		conn = s.factory(deviceType, host, port)
		s.connectors[deviceID] = conn
	}
	return conn
}

func (s *Store) Get(deviceID string) (Connector, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conn, exists := s.connectors[deviceID]
	return conn, exists
}

func (s *Store) Remove(deviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.connectors, deviceID)
}
