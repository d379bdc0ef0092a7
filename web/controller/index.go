package controller

import (
	"errors"
	"net/http"
	"time"

	"hamlog/logger"
	"hamlog/web/service"
	"hamlog/web/session"

	"github.com/gin-gonic/gin"
)

type loginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type registerForm struct {
	Nickname string `json:"nickname" form:"nickname"`
	Password string `json:"password" form:"password"`
	Email    string `json:"email" form:"email"`
	Name     string `json:"name" form:"name"`
}

// IndexController owns the authentication surface: login page, login /
// register APIs and logout.
type IndexController struct {
	BaseController

	userService      service.UserService
	rateLimitService service.RateLimitService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/login", a.loginPage)
	g.POST("/api/login", a.login)
	g.POST("/api/register", a.register)
	g.GET("/logout", a.logout)
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/")
		return
	}
	html(c, "login.html", "login.title", nil)
}

func (a *IndexController) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "login.required"))
		return
	}

	// 10 attempts per source IP per minute.
	if !a.rateLimitService.Allow(c.Request.Context(), c.ClientIP(), "login", 10, time.Minute) {
		pureJsonMsg(c, http.StatusTooManyRequests, false, I18nWeb(c, "login.tooMany"))
		return
	}

	user, err := a.userService.Authenticate(form.Username, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "login.userNotFound"))
		case errors.Is(err, service.ErrWrongPassword):
			logger.Infof("wrong password for %q from %s", form.Username, c.ClientIP())
			pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "login.wrongPassword"))
		default:
			pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "error.server"))
		}
		return
	}

	if err := session.SetLoginUser(c, user.Id); err != nil {
		pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "error.server"))
		return
	}

	token, err := a.jwtService.GenerateToken(user.Id)
	if err != nil {
		// The cookie session is established; the token is a convenience for
		// API clients, so a signing failure only costs them that.
		logger.Warning("token generation failed:", err)
	}

	logger.Infof("%s logged in from %s", user.Nickname, c.ClientIP())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": I18nWeb(c, "login.success"),
		"token":   token,
	})
}

func (a *IndexController) register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil ||
		form.Nickname == "" || form.Password == "" || form.Email == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "register.invalid"))
		return
	}

	_, err := a.userService.Register(form.Nickname, form.Password, form.Email, form.Name)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "register.duplicate"))
			return
		}
		pureJsonMsg(c, http.StatusInternalServerError, false, I18nWeb(c, "error.server"))
		return
	}

	pureJsonMsg(c, http.StatusCreated, true, I18nWeb(c, "register.success"))
}

func (a *IndexController) logout(c *gin.Context) {
	if err := session.ClearSession(c); err != nil {
		logger.Warning("clear session failed:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, "/login")
}
