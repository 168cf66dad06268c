package config

import (
	"gopkg.in/yaml.v2"
	"os"
)

var AppConfig *Config

type Config struct {
	MongoDB struct {
		URI      string `yaml:"uri"`
		Database string `yaml:"database"`
	} `yaml:"mongodb"`
	Addr struct {
		Port string `yaml:"port"`
		Host string `yaml:"host"`
	} `yaml:"addr"`
	Log struct {
		DebugEnabled bool `yaml:"debug_enabled"`
	} `yaml:"log"`
	Deployment struct {
		Id string `yaml:"id"`
	} `yaml:"deployment"`
	Identity struct {
		Host               string `yaml:"host"`
		Port               string `yaml:"port"`
		TokenEndpoint      string `yaml:"token_endpoint"`
		IntrospectEndpoint string `yaml:"introspect_endpoint"`
		ClientId           string `yaml:"client_id"`
		ClientSecret       string `yaml:"client_secret"`
		InitialToken       string `yaml:"initial_token"`
	} `yaml:"identity"`
	Suggestion struct {
		Endpoint string `yaml:"endpoint"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"suggestion"`
	Auth struct {
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	} `yaml:"auth"`
}

// LoadConfig loads and sets AppConfig (global variable)
func LoadConfig(filePath string) (*Config, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, err
	}

	AppConfig = &config
	return AppConfig, nil
}
