package main

import (
	"log"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/godror/godror"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/eduardofuncao/cubo/internal/config"
	"github.com/eduardofuncao/cubo/internal/styles"
)

func main() {
	cfg, err := config.LoadConfig(config.CfgFile)
	if err != nil {
		log.Fatal("Could not load config file: ", err)
	}

	styles.InitScheme(cfg.Style.Scheme, cfg.Style.Custom)

	NewApp(cfg).Run()
}
