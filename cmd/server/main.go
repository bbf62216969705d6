package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gopea.xyz/smart-house-service/pkg/common"
	"gopea.xyz/smart-house-service/pkg/db"
	"gopea.xyz/smart-house-service/pkg/house"
	houseHttp "gopea.xyz/smart-house-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	houseDbType := os.Getenv(common.EnvKeyHouseDBType)
	switch houseDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown HOUSE_DB_TYPE: " + houseDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHouseHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyHouseDefaultRate), 64); err != nil {
		log.Fatal("Invalid HOUSE_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyHouseDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid HOUSE_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	houseCore := house.New(*dbInstance)
	houseCore.WithDefaultServices()

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &houseHttp.RestfulServer{
		Server:           gin.Default(),
		House:            houseCore,
		RateLimiterStore: house.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
