package main

import (
	"context"
	"strconv"
	"syscall"

	"github.com/oklog/run"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/eduardofuncao/cubo/internal/server"
	"github.com/eduardofuncao/cubo/internal/source"
)

func (a *App) handleServe() {
	addr := flagValue("--addr", ":5000")
	kind := flagValue("--source", "synthetic")
	conn := flagValue("--conn", "")
	table := flagValue("--table", "")
	logFile := flagValue("--log-file", "")

	seed, err := strconv.ParseInt(flagValue("--seed", "42"), 10, 64)
	if err != nil {
		printError("Invalid seed value: %s", flagValue("--seed", "42"))
	}

	if logFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	src, err := source.Create(kind, conn, table, seed)
	if err != nil {
		printError("Could not create dataset source: %v", err)
	}
	defer src.Close()

	log.Infof("loading dataset from %s", src.Name())
	ds, err := src.Load()
	if err != nil {
		printError("Could not load dataset from %s: %v", src.Name(), err)
	}
	if len(ds) == 0 {
		printError("Dataset from %s is empty", src.Name())
	}

	srv := server.New(addr, ds)

	var g run.Group
	g.Add(func() error {
		return srv.Run()
	}, func(error) {
		if err := srv.Shutdown(); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	})
	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))

	if err := g.Run(); err != nil {
		if _, ok := err.(run.SignalError); ok {
			log.Infof("shutting down: %v", err)
			return
		}
		printError("Server exited: %v", err)
	}
}
