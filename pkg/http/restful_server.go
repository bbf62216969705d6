package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gopea.xyz/smart-house-service/pkg/house"
)

type RestfulServer struct {
	Server           *gin.Engine
	House            *house.House
	RateLimiterStore *house.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	device := rs.Server.Group("/device")
	{
		device.POST("", rs.CreateDevice)
		device.GET("", rs.ListDevices)
		device.GET("/:device_id", rs.GetEntity)
		device.PATCH("/:device_id", rs.ModifyEntity)
		device.DELETE("/:device_id", rs.DeleteEntity)
		device.POST("/:device_id/connect", rs.Connect)
		device.POST("/:device_id/disconnect", rs.Disconnect)
		device.POST("/:device_id/reboot", rs.Reboot)
		device.POST("/:device_id/power_off", rs.PowerOff)
		device.POST("/:device_id/execute", rs.Execute)
		device.GET("/:device_id/metrics", rs.GetMetrics)
		device.POST("/:device_id/limiter", rs.PostLimiter)
	}

	pool := rs.Server.Group("/device_pool")
	{
		pool.POST("", rs.CreatePool)
		pool.GET("", rs.ListPools)
		pool.GET("/:device_id", rs.GetEntity)
		pool.PATCH("/:device_id", rs.ModifyEntity)
		pool.DELETE("/:device_id", rs.DeleteEntity)
	}
}
