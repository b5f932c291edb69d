package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyTermoDBType string = "TERMO_DB_TYPE"
	EnvKeyTermoDbPath string = "TERMO_DB_PATH"

	EnvKeyTermoHttpHostPort string = "TERMO_HTTP_HOST_PORT"

	EnvKeyTermoReferenceTZ string = "TERMO_REFERENCE_TZ"

	EnvKeyTermoDefaultRate  string = "TERMO_DEFAULT_RATE"
	EnvKeyTermoDefaultBurst string = "TERMO_DEFAULT_BURST"

	LoggerNameTermoCore     string = "termo_core"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldTermoCategory        string = "category"
	LoggerCategoryTermoVerification string = "verification"
	LoggerCategoryTermoAlert        string = "alert"
	LoggerCategoryTermoStats        string = "stats"
	LoggerCategoryTermoThermometer  string = "thermometer"
)
