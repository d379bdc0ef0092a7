package global

import (
	"context"

	"github.com/robfig/cron/v3"
)

var webServer WebServer

// WebServer is what jobs and controllers may reach for without importing the
// web package itself.
type WebServer interface {
	GetCron() *cron.Cron
	GetCtx() context.Context
}

func SetWebServer(s WebServer) {
	webServer = s
}

func GetWebServer() WebServer {
	return webServer
}
