package job

import (
	"time"

	"hamlog/database"
	"hamlog/logger"
	"hamlog/web/global"
)

// DailyReportJob logs headline numbers once a day so operators can follow
// growth without an admin UI.
type DailyReportJob struct{}

func NewDailyReportJob() *DailyReportJob {
	return new(DailyReportJob)
}

func (j *DailyReportJob) Run() {
	// The schedule can still fire while the server is draining.
	if s := global.GetWebServer(); s != nil && s.GetCtx().Err() != nil {
		return
	}
	users, err := database.CountUsers()
	if err != nil {
		logger.Warning("daily report: count users failed:", err)
		return
	}
	logs, err := database.CountLogsSince(time.Now().Add(-24 * time.Hour))
	if err != nil {
		logger.Warning("daily report: count logs failed:", err)
		return
	}
	logger.Infof("daily report: %d users, %d journal entries in the last 24h", users, logs)
}
