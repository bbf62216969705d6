// Package catalog is the static device type table: which configuration
// fields a type accepts and which command fields execute may merge into its
// data payload. Pool type-compatibility checks consult the same table.
package catalog

import (
	"fmt"

	"gopea.xyz/smart-house-service/pkg/models"
)

const (
	UpdateTimeMin = 0
	UpdateTimeMax = 604800 // 7 days, in seconds

	FieldState = "state"
	FieldColor = "color"

	StateOn  = "on"
	StateOff = "off"
)

type TypeSpec struct {
	// Networked types carry host/port in device_properties.
	Networked bool
	// CommandFields lists the data fields execute accepts for this type.
	CommandFields []string
	// DefaultData is the payload a freshly created device reports.
	DefaultData map[string]string
}

var specs = map[models.DeviceType]TypeSpec{
	models.DeviceTypeLamp: {
		Networked:     true,
		CommandFields: []string{FieldState},
		DefaultData:   map[string]string{FieldState: StateOff},
	},
	models.DeviceTypeRGBLamp: {
		Networked:     true,
		CommandFields: []string{FieldState, FieldColor},
		DefaultData:   map[string]string{FieldState: StateOff, FieldColor: "white"},
	},
	models.DeviceTypeWindow: {
		Networked:     true,
		CommandFields: []string{FieldState},
		DefaultData:   map[string]string{FieldState: StateOff},
	},
	models.DeviceTypeDoor: {
		Networked:     true,
		CommandFields: []string{FieldState},
		DefaultData:   map[string]string{FieldState: StateOff},
	},
}

func Lookup(t models.DeviceType) (TypeSpec, bool) {
	spec, ok := specs[t]
	return spec, ok
}

func KnownType(t models.DeviceType) bool {
	_, ok := specs[t]
	return ok
}

// DefaultData returns a fresh copy of the type's initial payload.
func DefaultData(t models.DeviceType) map[string]string {
	spec, ok := specs[t]
	if !ok {
		return map[string]string{}
	}
	data := make(map[string]string, len(spec.DefaultData))
	for k, v := range spec.DefaultData {
		data[k] = v
	}
	return data
}

// FilterCommand drops command fields the type does not declare. Undeclared
// fields are ignored rather than rejected (permissive merge).
func FilterCommand(t models.DeviceType, command map[string]string) map[string]string {
	spec, ok := specs[t]
	if !ok {
		return map[string]string{}
	}
	filtered := make(map[string]string, len(command))
	for _, field := range spec.CommandFields {
		if value, present := command[field]; present {
			filtered[field] = value
		}
	}
	return filtered
}

// ValidateCommand checks the values of recognized fields. The state field
// only takes on/off; color is any non-empty name.
func ValidateCommand(command map[string]string) error {
	if state, present := command[FieldState]; present {
		if state != StateOn && state != StateOff {
			return fmt.Errorf("invalid state %q, expected %q or %q", state, StateOn, StateOff)
		}
	}
	if color, present := command[FieldColor]; present && color == "" {
		return fmt.Errorf("color must not be empty")
	}
	return nil
}

func ValidateUpdateTime(updateTime int) error {
	if updateTime < UpdateTimeMin || updateTime > UpdateTimeMax {
		return fmt.Errorf("update_time %d out of range [%d, %d]", updateTime, UpdateTimeMin, UpdateTimeMax)
	}
	return nil
}
