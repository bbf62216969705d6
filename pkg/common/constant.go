package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyHouseDBType string = "HOUSE_DB_TYPE"
	EnvKeyHouseDbPath string = "HOUSE_DB_PATH"

	EnvKeyHouseHttpHostPort string = "HOUSE_HTTP_HOST_PORT"

	EnvKeyHouseDefaultRate  string = "HOUSE_DEFAULT_RATE"
	EnvKeyHouseDefaultBurst string = "HOUSE_DEFAULT_BURST"

	LoggerNameHouseCore     string = "house_core"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldHouseCategory string = "category"
	LoggerCategoryRegistry   string = "registry"
	LoggerCategoryPool       string = "pool"
	LoggerCategoryDispatcher string = "dispatcher"
	LoggerCategorySampler    string = "sampler"
)
