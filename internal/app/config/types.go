package config

type (
	InternalConfig struct {
		App     App
		Gateway Gateway
		Session Session
	}

	App struct {
		Env      string
		Timezone string
	}

	Gateway struct {
		BaseURL           string
		TimeoutSeconds    int
		RequestsPerSecond int
	}

	Session struct {
		// Backend selects the persistence backend: "file" or "redis".
		Backend  string
		FilePath string
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
