package config

import (
	"fmt"

	"github.com/eduardofuncao/cubo/internal/view"
)

// SaveViewToServer saves a view against a server, generating an id when
// v.Id == -1. Creating a view whose name already exists is an error.
func (c *Config) SaveViewToServer(serverName string, v view.View) (view.View, error) {
	srv, ok := c.Servers[serverName]
	if !ok {
		return view.View{}, fmt.Errorf("server '%s' does not exist", serverName)
	}
	if srv.Views == nil {
		srv.Views = make(map[string]view.View)
	}

	if v.Id == -1 {
		if _, exists := srv.Views[v.Name]; exists {
			return view.View{}, fmt.Errorf("view '%s' already exists", v.Name)
		}
		v.Id = view.NextId(srv.Views)
	}

	srv.Views[v.Name] = v

	if err := c.Save(); err != nil {
		return view.View{}, err
	}
	return v, nil
}

func (c *Config) UpdateLastView(serverName string, v view.View) error {
	srv, ok := c.Servers[serverName]
	if !ok {
		return fmt.Errorf("server '%s' does not exist", serverName)
	}
	srv.LastView = v
	return c.Save()
}
