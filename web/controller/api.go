package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hamlog/config"
	"hamlog/web/service"

	"github.com/gin-gonic/gin"
)

type logForm struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

type oxForm struct {
	IsCorrect bool `json:"is_correct" form:"is_correct"`
}

type cardForm struct {
	// Pointer so that a missing field is distinguishable from a zero score.
	FinalScore *int `json:"final_score" form:"final_score"`
}

type ddayForm struct {
	DDay      string `json:"dday" form:"dday"`
	GoalEvent string `json:"goal_event" form:"goal_event"`
}

// APIController owns the authenticated JSON surface: journal posts, the two
// games, D-Day and profile updates.
type APIController struct {
	BaseController

	userService      service.UserService
	logService       service.LogService
	rewardService    service.RewardService
	rateLimitService service.RateLimitService
}

func NewAPIController(g *gin.RouterGroup) *APIController {
	a := &APIController{}
	a.initRouter(g)
	return a
}

func (a *APIController) initRouter(g *gin.RouterGroup) {
	api := g.Group("/api")
	api.Use(a.checkLogin)

	api.POST("/log", a.createLog)
	api.POST("/game/ox", a.gameOx)
	api.POST("/game/card", a.gameCard)
	api.POST("/dday", a.setDDay)
	api.POST("/profile", a.updateProfile)
}

func (a *APIController) createLog(c *gin.Context) {
	var form logForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "log.invalid"))
		return
	}

	userId := getUserId(c)
	now := time.Now()

	_, err := a.logService.CreateLog(userId, form.Title, form.Content, now)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTitle) {
			pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "log.invalid"))
			return
		}
		pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "error.server"))
		return
	}

	delta, err := a.rewardService.GrantPost(userId, now)
	if err != nil {
		pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "error.server"))
		return
	}

	if delta > 0 {
		jsonPoints(c, I18nWeb(c, "log.createdWithBonus", "Points", strconv.Itoa(delta)), delta)
		return
	}
	jsonPoints(c, I18nWeb(c, "log.created"), 0)
}

func (a *APIController) gameOx(c *gin.Context) {
	var form oxForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "error.server"))
		return
	}

	userId := getUserId(c)
	if !a.rateLimitService.Allow(c.Request.Context(), strconv.Itoa(userId), "game", 30, time.Minute) {
		pureJsonMsg(c, http.StatusTooManyRequests, false, I18nWeb(c, "login.tooMany"))
		return
	}

	delta, err := a.rewardService.GrantOx(userId, form.IsCorrect, time.Now())
	if err != nil {
		pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "error.server"))
		return
	}

	if form.IsCorrect {
		jsonPoints(c, I18nWeb(c, "game.oxCorrect", "Points", strconv.Itoa(delta)), delta)
		return
	}
	jsonPoints(c, I18nWeb(c, "game.oxWrong"), 0)
}

func (a *APIController) gameCard(c *gin.Context) {
	var form cardForm
	if err := c.ShouldBind(&form); err != nil || form.FinalScore == nil || *form.FinalScore < 0 {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "game.invalidScore"))
		return
	}

	userId := getUserId(c)
	if !a.rateLimitService.Allow(c.Request.Context(), strconv.Itoa(userId), "game", 30, time.Minute) {
		pureJsonMsg(c, http.StatusTooManyRequests, false, I18nWeb(c, "login.tooMany"))
		return
	}

	delta, err := a.rewardService.GrantCard(userId, *form.FinalScore, time.Now())
	if err != nil {
		pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "error.server"))
		return
	}

	jsonPoints(c, I18nWeb(c, "game.cardDone", "Points", strconv.Itoa(delta)), delta)
}

func (a *APIController) setDDay(c *gin.Context) {
	var form ddayForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "dday.invalid"))
		return
	}

	var dday *time.Time
	if form.DDay != "" {
		parsed, err := time.ParseInLocation("2006-01-02", form.DDay, config.GetTimeLocation())
		if err != nil {
			pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "dday.invalid"))
			return
		}
		dday = &parsed
	}

	err := a.userService.SetDDay(getUserId(c), dday, form.GoalEvent)
	jsonMsg(c, I18nWeb(c, "dday.saved"), err)
}

func (a *APIController) updateProfile(c *gin.Context) {
	name := c.PostForm("name")
	comment := c.PostForm("comment")
	email := c.PostForm("email")

	imgUrl := ""
	file, err := c.FormFile("avatar")
	if err == nil && file != nil {
		imgUrl, err = a.userService.SaveAvatar(c, file, config.GetUploadDir())
		if err != nil {
			switch {
			case errors.Is(err, service.ErrAvatarTooBig):
				pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "profile.avatarTooLarge"))
			case errors.Is(err, service.ErrAvatarType):
				pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "profile.avatarBadType"))
			default:
				pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "error.server"))
			}
			return
		}
	}

	err = a.userService.UpdateProfile(getUserId(c), name, comment, email, imgUrl)
	jsonMsg(c, I18nWeb(c, "profile.saved"), err)
}
