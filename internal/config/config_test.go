package config

import (
	"path/filepath"
	"testing"

	"github.com/eduardofuncao/cubo/internal/view"
)

func useTempConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	oldPath, oldFile := CfgPath, CfgFile
	CfgPath = dir
	CfgFile = filepath.Join(dir, "config.yaml")
	t.Cleanup(func() {
		CfgPath, CfgFile = oldPath, oldFile
	})
}

func TestLoadConfigCreatesBlankFile(t *testing.T) {
	useTempConfig(t)

	cfg, err := LoadConfig(CfgFile)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.CurrentServer != "" {
		t.Errorf("CurrentServer = %q, want empty", cfg.CurrentServer)
	}
	if cfg.Servers == nil {
		t.Error("Servers map should be initialized")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	useTempConfig(t)

	cfg := &Config{
		CurrentServer: "local",
		Servers: map[string]*Server{
			"local": {
				Name: "local",
				URL:  "http://localhost:8080",
				Views: map[string]view.View{
					"ventas_por_region": {
						Name: "ventas_por_region",
						Id:   1,
						Kind: view.KindCara,
						Params: map[string]string{
							"dim_x": "Año", "dim_y": "Región", "metric": "Ventas",
						},
					},
				},
			},
		},
		IntegerColumns: []string{"año", "cantidad", "trimestre"},
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := LoadConfig(CfgFile)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.CurrentServer != "local" {
		t.Errorf("CurrentServer = %q, want local", loaded.CurrentServer)
	}
	srv, ok := loaded.CurrentServerConfig()
	if !ok {
		t.Fatal("CurrentServerConfig() did not find the active server")
	}
	if srv.URL != "http://localhost:8080" {
		t.Errorf("URL = %q", srv.URL)
	}
	v, found := view.FindWithSelector(srv.Views, "ventas_por_region")
	if !found {
		t.Fatal("saved view not found after reload")
	}
	if v.Params["dim_x"] != "Año" {
		t.Errorf("view params lost in round trip: %v", v.Params)
	}
	if len(loaded.IntegerColumns) != 3 {
		t.Errorf("IntegerColumns = %v", loaded.IntegerColumns)
	}
}

func TestSaveViewToServer(t *testing.T) {
	useTempConfig(t)

	cfg := &Config{
		CurrentServer: "local",
		Servers:       map[string]*Server{"local": {Name: "local", URL: "http://localhost:8080"}},
	}

	saved, err := cfg.SaveViewToServer("local", view.View{Name: "v1", Id: -1, Kind: view.KindCubo})
	if err != nil {
		t.Fatalf("SaveViewToServer() error: %v", err)
	}
	if saved.Id != 1 {
		t.Errorf("first view id = %d, want 1", saved.Id)
	}

	_, err = cfg.SaveViewToServer("local", view.View{Name: "v1", Id: -1, Kind: view.KindCubo})
	if err == nil {
		t.Error("duplicate view name should be rejected")
	}

	second, err := cfg.SaveViewToServer("local", view.View{Name: "v2", Id: -1, Kind: view.KindCara})
	if err != nil {
		t.Fatalf("SaveViewToServer() error: %v", err)
	}
	if second.Id != 2 {
		t.Errorf("second view id = %d, want 2", second.Id)
	}

	_, err = cfg.SaveViewToServer("missing", view.View{Name: "v3", Id: -1})
	if err == nil {
		t.Error("unknown server should be rejected")
	}
}

func TestUpdateLastView(t *testing.T) {
	useTempConfig(t)

	cfg := &Config{
		Servers: map[string]*Server{"local": {Name: "local"}},
	}
	v := view.View{Name: "ultima", Id: 3, Kind: view.KindCelda}
	if err := cfg.UpdateLastView("local", v); err != nil {
		t.Fatalf("UpdateLastView() error: %v", err)
	}
	if cfg.Servers["local"].LastView.Name != "ultima" {
		t.Errorf("LastView = %+v", cfg.Servers["local"].LastView)
	}
}
