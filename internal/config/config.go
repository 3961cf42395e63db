package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ZoneConfig struct {
	Env string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	ZoneDB       `yaml:"zone_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Reconciler   `yaml:"reconciler"`
	Assignment   `yaml:"assignment"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type ZoneDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"assignment-events"`
}

type Reconciler struct {
	ActivateInterval   time.Duration `yaml:"activate_interval" env-default:"1m"`
	DeactivateInterval time.Duration `yaml:"deactivate_interval" env-default:"1h"`
	AssigneeTypes      []string      `yaml:"assignee_types"`
}

type Assignment struct {
	// ExclusiveLinks preserves the historical single-zone policy: an
	// immediate assignment clears the resolved commercials' links in
	// every zone, not just the target one.
	ExclusiveLinks      bool `yaml:"exclusive_links" env-default:"true"`
	DefaultDurationDays int  `yaml:"default_duration_days" env-default:"30"`
}

func MustLoad() *ZoneConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ZONE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ZONE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ZoneConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
