package models

// View types are the JSON shapes the REST surface returns. They are built
// from copies, never from rows shared with the store.

type StatusView struct {
	Status DeviceState `json:"status"`
}

type DeviceProperties struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	UpdateTime int    `json:"update_time"`
}

type DeviceView struct {
	ID               string            `json:"id"`
	DeviceType       DeviceType        `json:"device_type"`
	DeviceProperties DeviceProperties  `json:"device_properties"`
	Status           StatusView        `json:"status"`
	Data             map[string]string `json:"data"`
	MemberOf         string            `json:"member_of,omitempty"`
}

type PoolView struct {
	ID         string     `json:"id"`
	DeviceType DeviceType `json:"device_type"`
	Status     StatusView `json:"status"`
	Members    []string   `json:"members"`
}

func (d *Device) View() DeviceView {
	data := make(map[string]string, len(d.Data))
	for k, v := range d.Data {
		data[k] = v
	}
	return DeviceView{
		ID:         d.ID,
		DeviceType: d.Type,
		DeviceProperties: DeviceProperties{
			Host:       d.Host,
			Port:       d.Port,
			UpdateTime: d.UpdateTime,
		},
		Status:   StatusView{Status: d.Status},
		Data:     data,
		MemberOf: d.PoolID,
	}
}

func (p *DevicePool) View() PoolView {
	members := make([]string, len(p.Members))
	copy(members, p.Members)
	return PoolView{
		ID:         p.ID,
		DeviceType: p.Type,
		Status:     StatusView{Status: p.Status},
		Members:    members,
	}
}
