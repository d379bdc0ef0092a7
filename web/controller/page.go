package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"hamlog/config"
	"hamlog/reward"
	"hamlog/web/service"

	"github.com/gin-gonic/gin"
)

// PageController renders every server-side page behind the login gate.
type PageController struct {
	BaseController

	userService service.UserService
	logService  service.LogService
}

func NewPageController(g *gin.RouterGroup) *PageController {
	a := &PageController{}
	a.initRouter(g)
	return a
}

func (a *PageController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/")
	g.Use(a.checkLogin)

	g.GET("/", a.index)
	g.GET("/logs", a.logs)
	g.GET("/logs/:logId", a.logDetail)
	g.GET("/post", a.post)
	g.GET("/challenge", a.challenge)
	g.GET("/ox", a.ox)
	g.GET("/card", a.card)
	g.GET("/profile", a.profile)
}

func (a *PageController) index(c *gin.Context) {
	user, err := a.userService.GetUser(getUserId(c))
	if err != nil {
		html(c, "error.html", "error.server", nil)
		return
	}

	now := time.Now()
	loc := config.GetTimeLocation()

	ddayLabel := ""
	goalDate := ""
	if user.DDay != nil {
		days := reward.DDay(*user.DDay, now, loc)
		switch {
		case days > 0:
			ddayLabel = fmt.Sprintf("D-%d", days)
		case days == 0:
			ddayLabel = "D-DAY"
		default:
			ddayLabel = fmt.Sprintf("D+%d", -days)
		}
		goalDate = user.DDay.In(loc).Format("2006-01-02")
	}

	isPostCompleted := user.LastPost != nil && reward.SameCalendarDay(*user.LastPost, now, loc)
	isGameCompleted := user.LastGame != nil && reward.SameCalendarDay(*user.LastGame, now, loc)

	recentLogs, err := a.logService.GetRecentLogs(user.Id)
	if err != nil {
		html(c, "error.html", "error.server", nil)
		return
	}

	html(c, "index.html", "pages.home", gin.H{
		"user":            user,
		"ddayLabel":       ddayLabel,
		"goalEvent":       user.GoalEvent,
		"goalDate":        goalDate,
		"isPostCompleted": isPostCompleted,
		"isGameCompleted": isGameCompleted,
		"recentLogs":      recentLogs,
	})
}

func (a *PageController) logs(c *gin.Context) {
	user, err := a.userService.GetUser(getUserId(c))
	if err != nil {
		html(c, "error.html", "error.server", nil)
		return
	}
	logs, err := a.logService.GetLogs(user.Id)
	if err != nil {
		html(c, "error.html", "error.server", nil)
		return
	}
	html(c, "logs.html", "pages.logs", gin.H{
		"user": user,
		"logs": logs,
	})
}

func (a *PageController) logDetail(c *gin.Context) {
	logId, err := strconv.Atoi(c.Param("logId"))
	if err != nil {
		c.String(http.StatusNotFound, I18nWeb(c, "log.notFound"))
		return
	}
	log, err := a.logService.GetLog(logId, getUserId(c))
	if err != nil {
		html(c, "error.html", "error.server", nil)
		return
	}
	if log == nil {
		c.String(http.StatusNotFound, I18nWeb(c, "log.notFound"))
		return
	}
	html(c, "article.html", "pages.logs", gin.H{
		"log": log,
	})
}

func (a *PageController) post(c *gin.Context) {
	html(c, "post.html", "pages.post", nil)
}

func (a *PageController) challenge(c *gin.Context) {
	user, err := a.userService.GetUser(getUserId(c))
	if err != nil {
		html(c, "error.html", "error.server", nil)
		return
	}
	html(c, "challenge.html", "pages.challenge", gin.H{
		"user": user,
	})
}

func (a *PageController) ox(c *gin.Context) {
	html(c, "ox.html", "pages.ox", nil)
}

func (a *PageController) card(c *gin.Context) {
	html(c, "card.html", "pages.card", nil)
}

func (a *PageController) profile(c *gin.Context) {
	user, err := a.userService.GetUser(getUserId(c))
	if err != nil {
		html(c, "error.html", "error.server", nil)
		return
	}
	html(c, "profile.html", "pages.profile", gin.H{
		"user": user,
	})
}
