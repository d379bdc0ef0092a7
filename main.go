package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hamlog/config"
	"hamlog/database"
	"hamlog/logger"
	"hamlog/web"
	"hamlog/web/global"

	"github.com/op/go-logging"
)

func runWebServer() {
	logLevel := logging.INFO
	switch config.GetLogLevel() {
	case config.Debug:
		logLevel = logging.DEBUG
	case config.Info:
		logLevel = logging.INFO
	case config.Warn:
		logLevel = logging.WARNING
	case config.Error:
		logLevel = logging.ERROR
	}
	logger.InitLogger(logLevel)

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		logger.Error("init database failed:", err)
		return
	}

	server := web.NewServer()
	global.SetWebServer(server)
	err = server.Start()
	if err != nil {
		logger.Error("start web server failed:", err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, os.Interrupt)

	for sig := range sigCh {
		switch sig {
		case syscall.SIGHUP:
			logger.Info("received SIGHUP, restarting web server...")

			err := server.Stop()
			if err != nil {
				logger.Warning("stop web server failed:", err)
			}
			server = web.NewServer()
			global.SetWebServer(server)
			err = server.Start()
			if err != nil {
				logger.Error("restart web server failed:", err)
				return
			}
		default:
			logger.Infof("received %v, shutting down", sig)
			err := server.Stop()
			if err != nil {
				logger.Warning("stop web server failed:", err)
			}
			return
		}
	}
}

func main() {
	showVersion := flag.Bool("v", false, "show version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Println(config.GetName(), config.GetVersion())
		return
	}

	config.LoadEnv()
	runWebServer()
}
