package config

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/Dantexito/Taller3-OS/internal/core"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	// MaxProcesses bounds every process set; 0 means no limit.
	MaxProcesses int
	// MaxTime bounds the simulated time axis of one run; 0 means no limit.
	MaxTime  int
	LogLevel string
}

var once sync.Once
var config *SchedulerConfig

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("./")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads config.yaml from dir. A missing file is not an error, defaults and
// SCHEDULER_* environment variables still apply.
func Load(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_processes", 100)
	v.SetDefault("scheduler.max_time", 1000000)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
		MaxTime:               v.GetInt("scheduler.max_time"),
		LogLevel:              v.GetString("log.level"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("%w: scheduler.round_robin.time_quantum must be positive, got %d", core.ErrInvalidConfiguration, c.RoundRobinTimeQuantum)
	}
	if c.MaxProcesses < 0 {
		return fmt.Errorf("%w: scheduler.max_processes must not be negative, got %d", core.ErrInvalidConfiguration, c.MaxProcesses)
	}
	if c.MaxTime < 0 {
		return fmt.Errorf("%w: scheduler.max_time must not be negative, got %d", core.ErrInvalidConfiguration, c.MaxTime)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", core.ErrInvalidConfiguration, c.Port)
	}
	return nil
}

func (c *SchedulerConfig) Limits() core.Limits {
	return core.Limits{MaxProcesses: c.MaxProcesses, MaxTime: c.MaxTime}
}
