package cmd

import (
	"fmt"
	"time"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort      string
	LogLevel      string
	StorageDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ProductCacheTTL time.Duration

	KafkaHost              string
	KafkaOrderChangedTopic string

	SeedFile          string
	LowStockThreshold int
	LowStockSchedule  string
	BacklogSchedule   string
	ActivityFeedSize  int
}

// PostgresDSN builds the connection string for the postgres storage driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
