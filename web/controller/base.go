package controller

import (
	"net/http"
	"strings"

	"hamlog/web/service"
	"hamlog/web/session"

	"github.com/gin-gonic/gin"
)

type BaseController struct {
	jwtService service.JWTService
}

// checkLogin accepts either the session cookie set at login or a bearer
// token from POST /api/login. Browsers get redirected to the login page,
// API clients get a 401.
func (a *BaseController) checkLogin(c *gin.Context) {
	if id, ok := session.GetLoginUserId(c); ok {
		c.Set("userId", id)
		c.Next()
		return
	}

	if token := bearerToken(c); token != "" {
		id, err := a.jwtService.ValidateToken(token)
		if err == nil {
			c.Set("userId", id)
			c.Next()
			return
		}
	}

	if isAjax(c) || strings.HasPrefix(c.Request.URL.Path, "/api") {
		pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "login.loginAgain"))
	} else {
		c.Redirect(http.StatusTemporaryRedirect, "/login")
	}
	c.Abort()
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
