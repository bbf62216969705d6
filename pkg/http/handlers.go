package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"gopea.xyz/smart-house-service/pkg/house"
	"gopea.xyz/smart-house-service/pkg/models"
)

func (rs *RestfulServer) renderError(c *gin.Context, err error) {
	c.JSON(house.HTTPStatus(err), gin.H{"message": err.Error()})
}

type DevicePropertiesRequest struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	UpdateTime int    `json:"update_time"`
}

type CreateDeviceRequest struct {
	DeviceType       string                  `json:"device_type"`
	DeviceProperties DevicePropertiesRequest `json:"device_properties"`
}

var createDeviceRequestSchema = z.Struct(z.Shape{
	"DeviceType": z.String().Required(),
	"DeviceProperties": z.Struct(z.Shape{
		"Host":       z.String().Required(),
		"Port":       z.Int().Required(),
		"UpdateTime": z.Int(),
	}),
})

func (rs *RestfulServer) CreateDevice(c *gin.Context) {
	var req CreateDeviceRequest
	if err := createDeviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device, err := rs.House.Registry.CreateDevice(&house.CreateDeviceInput{
		Type:       models.DeviceType(req.DeviceType),
		Host:       req.DeviceProperties.Host,
		Port:       req.DeviceProperties.Port,
		UpdateTime: req.DeviceProperties.UpdateTime,
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": device.ID})
}

type CreatePoolRequest struct {
	DeviceType string `json:"device_type"`
}

var createPoolRequestSchema = z.Struct(z.Shape{
	"DeviceType": z.String().Required(),
})

func (rs *RestfulServer) CreatePool(c *gin.Context) {
	var req CreatePoolRequest
	if err := createPoolRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	pool, err := rs.House.Registry.CreatePool(&house.CreatePoolInput{
		Type: models.DeviceType(req.DeviceType),
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": pool.ID})
}

func (rs *RestfulServer) ListDevices(c *gin.Context) {
	deviceType := models.DeviceType(c.Query("device_type"))

	devices, err := rs.House.Registry.ListDevices(deviceType)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	views := make([]models.DeviceView, len(devices))
	for idx := range devices {
		views[idx] = devices[idx].View()
	}
	c.JSON(http.StatusOK, views)
}

func (rs *RestfulServer) ListPools(c *gin.Context) {
	pools, err := rs.House.Registry.ListPools()
	if err != nil {
		rs.renderError(c, err)
		return
	}

	views := make([]models.PoolView, len(pools))
	for idx := range pools {
		views[idx] = pools[idx].View()
	}
	c.JSON(http.StatusOK, views)
}

// GetEntity returns the view of a device or a pool; both share the id space.
func (rs *RestfulServer) GetEntity(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	if device, err := rs.House.Registry.GetDevice(deviceID); err == nil {
		c.JSON(http.StatusOK, device.View())
		return
	}

	pool, err := rs.House.Registry.GetPool(deviceID)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, pool.View())
}

type ModifyRequest struct {
	DeviceProperties struct {
		UpdateTime *int     `json:"update_time"`
		Add        []string `json:"add"`
		Remove     []string `json:"remove"`
	} `json:"device_properties"`
}

var modifyRequestSchema = z.Struct(z.Shape{
	"DeviceProperties": z.Struct(z.Shape{
		"UpdateTime": z.Ptr(z.Int()),
		"Add":        z.Slice(z.String()),
		"Remove":     z.Slice(z.String()),
	}),
})

// ModifyEntity patches device_properties. For a device only update_time is
// mutable; for a pool add/remove carry member ids and update_time fans out
// to the members.
func (rs *RestfulServer) ModifyEntity(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req ModifyRequest
	if err := modifyRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	props := req.DeviceProperties

	if _, err := rs.House.Registry.GetPool(deviceID); err == nil {
		pool, err := rs.House.Pool.Update(deviceID, house.PoolUpdate{
			Add:        props.Add,
			Remove:     props.Remove,
			UpdateTime: props.UpdateTime,
		})
		if err != nil {
			rs.renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, pool.View())
		return
	}

	if len(props.Add) > 0 || len(props.Remove) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "add/remove apply to pools only"})
		return
	}
	if props.UpdateTime == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "empty update is invalid"})
		return
	}

	device, err := rs.House.Registry.ModifyDevice(deviceID, *props.UpdateTime)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, device.View())
}

func (rs *RestfulServer) DeleteEntity(c *gin.Context) {
	deviceID := c.Param("device_id")

	if err := rs.House.Registry.Delete(deviceID); err != nil {
		rs.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) lifecycle(c *gin.Context, op func(string) (*house.DispatchResult, error)) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	result, err := op(deviceID)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result.JSON())
}

func (rs *RestfulServer) Connect(c *gin.Context) {
	rs.lifecycle(c, rs.House.Dispatcher.Connect)
}

func (rs *RestfulServer) Disconnect(c *gin.Context) {
	rs.lifecycle(c, rs.House.Dispatcher.Disconnect)
}

func (rs *RestfulServer) Reboot(c *gin.Context) {
	rs.lifecycle(c, rs.House.Dispatcher.Reboot)
}

func (rs *RestfulServer) PowerOff(c *gin.Context) {
	rs.lifecycle(c, rs.House.Dispatcher.PowerOff)
}

// Execute takes a free-form command body; the catalog decides which fields
// the target type accepts.
func (rs *RestfulServer) Execute(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var command map[string]string
	if err := c.ShouldBindJSON(&command); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "body is required for this request"})
		return
	}
	if len(command) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "body is required for this request"})
		return
	}

	result, err := rs.House.Dispatcher.Execute(deviceID, command)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result.JSON())
}

// GetMetrics returns the sampler history, oldest sample first. A pool id
// yields one {id, metrics} entry per member.
func (rs *RestfulServer) GetMetrics(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	result, err := rs.House.Dispatcher.Metrics(deviceID)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result.JSON())
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
