package models

import "time"

type DeviceType string

const (
	DeviceTypeLamp    DeviceType = "lamp"
	DeviceTypeRGBLamp DeviceType = "rgb_lamp"
	DeviceTypeWindow  DeviceType = "window"
	DeviceTypeDoor    DeviceType = "door"
)

type DeviceState string

const (
	StateConnected    DeviceState = "Connected"
	StateDisconnected DeviceState = "Disconnected"
	StateError        DeviceState = "Error"
	StatePoweredOff   DeviceState = "PoweredOff"
)

// Device is a single controllable appliance. ID is assigned at creation and
// never reused. Type is immutable after creation. PoolID is the back
// reference maintained by pool membership operations, empty when unpooled.
type Device struct {
	ID         string      `gorm:"primaryKey"`
	Type       DeviceType  `gorm:"index;type:varchar(20);check:type IN ('lamp','rgb_lamp','window','door')"`
	Host       string
	Port       int
	UpdateTime int
	Status     DeviceState
	Data       map[string]string `gorm:"serializer:json"`
	PoolID     string            `gorm:"index"`
}

// DevicePool groups same-type devices for broadcast commands. Members is the
// ordered set of member device ids, authoritative over Device.PoolID.
type DevicePool struct {
	ID      string     `gorm:"primaryKey"`
	Type    DeviceType `gorm:"index"`
	Status  DeviceState
	Members []string `gorm:"serializer:json"`
}

// MetricSample is one sampler capture. Samples live in the in-memory
// per-device ring only and are never persisted.
type MetricSample struct {
	Time   time.Time         `json:"time"`
	Status DeviceState       `json:"status"`
	Data   map[string]string `json:"data"`
}
