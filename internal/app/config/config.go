package config

import (
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "medcare.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "medcare_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
		},
		Gateway: Gateway{
			BaseURL:           utils.GetEnvString("GATEWAY_BASE_URL", "http://127.0.0.1:8000"),
			TimeoutSeconds:    utils.GetEnvInt("GATEWAY_TIMEOUT_SECONDS", 15),
			RequestsPerSecond: utils.GetEnvInt("GATEWAY_REQUESTS_PER_SECOND", 0),
		},
		Session: Session{
			Backend:  utils.GetEnvString("SESSION_BACKEND", constvars.SessionBackendFile),
			FilePath: utils.GetEnvString("SESSION_FILE_PATH", ".medcare_session.json"),
		},
	}
}
