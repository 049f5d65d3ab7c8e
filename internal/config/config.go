package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataFile string
	ChartDir string

	DefaultJobCount int

	GeneratorLogFile string
	AnalyzerLogFile  string
	LogLevel         string

	OTELCollectorURL  string
	ServiceNamePrefix string
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine; the environment and defaults still apply.
	_ = godotenv.Load()

	config := &Config{
		DataFile: getEnvString("JOBS_DATA_FILE", "jobs_data.csv"),
		ChartDir: getEnvString("CHART_DIR", "."),

		DefaultJobCount: getEnvInt("DEFAULT_JOB_COUNT", 200),

		GeneratorLogFile: getEnvString("GENERATOR_LOG_FILE", "generator.log"),
		AnalyzerLogFile:  getEnvString("ANALYZER_LOG_FILE", ""),
		LogLevel:         getEnvString("LOG_LEVEL", "info"),

		OTELCollectorURL:  getEnvString("OTEL_COLLECTOR_URL", ""),
		ServiceNamePrefix: getEnvString("SERVICE_NAME_PREFIX", "jobstats"),
	}

	if config.DefaultJobCount < 0 {
		config.DefaultJobCount = 200
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
