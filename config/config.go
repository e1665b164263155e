package config

import (
	"os"
	"sync"

	"portfolio/logutils"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Postgres struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		DBName   string `yaml:"dbname"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		SSLMode  string `yaml:"sslmode"`
		TimeZone string `yaml:"TimeZone"`
	} `yaml:"postgres"`
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	Auth struct {
		SessionSecret   string `yaml:"sessionSecret"`
		SessionTTLHours int    `yaml:"sessionTTLHours"`
		CookieName      string `yaml:"cookieName"`
	} `yaml:"auth"`
	CORSOrigins []string `yaml:"corsOrigins"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

// initConfig reads the configuration file. The path defaults to
// ./etc/config.yaml and can be overridden with PORTFOLIO_CONFIG.
func initConfig() *Config {
	config := &Config{}
	configPath := os.Getenv("PORTFOLIO_CONFIG")
	if configPath == "" {
		configPath = "./etc/config.yaml"
	}

	err := readConfig(configPath, config)
	if err != nil {
		logutils.Log.Error("init config", err)
		panic(err)
	}
	if config.Auth.CookieName == "" {
		config.Auth.CookieName = "portfolio_session"
	}
	if config.Auth.SessionTTLHours == 0 {
		config.Auth.SessionTTLHours = 24
	}
	return config
}

func readConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return err
	}
	return nil
}
