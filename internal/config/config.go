package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/eduardofuncao/cubo/internal/styles"
	"github.com/eduardofuncao/cubo/internal/view"
)

var CfgPath = os.ExpandEnv("$HOME/.config/cubo/")
var CfgFile = filepath.Join(CfgPath, "config.yaml")

type Config struct {
	CurrentServer  string             `yaml:"current_server"`
	Servers        map[string]*Server `yaml:"servers"`
	Style          Style              `yaml:"style"`
	IntegerColumns []string           `yaml:"integer_columns"`
}

// Server is one cube API the client can talk to, together with the views
// saved against it.
type Server struct {
	Name     string               `yaml:"name"`
	URL      string               `yaml:"url"`
	Views    map[string]view.View `yaml:"views"`
	LastView view.View            `yaml:"last_view"`
}

type Style struct {
	Scheme string              `yaml:"scheme"`
	Custom *styles.ColorScheme `yaml:"custom,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Creating blank config file at", CfgFile)
			cfg := &Config{
				CurrentServer:  "",
				Servers:        make(map[string]*Server),
				Style:          Style{},
				IntegerColumns: nil,
			}
			err := cfg.Save()
			if err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Save() error {
	err := os.MkdirAll(CfgPath, 0755)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(CfgFile, data, 0644)
}

// CurrentServerConfig returns the active server entry, if any.
func (c *Config) CurrentServerConfig() (*Server, bool) {
	if c.CurrentServer == "" {
		return nil, false
	}
	srv, ok := c.Servers[c.CurrentServer]
	return srv, ok
}
