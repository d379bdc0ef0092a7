package controller

import (
	"net/http"

	"hamlog/config"
	"hamlog/logger"
	"hamlog/web/locale"

	"github.com/gin-gonic/gin"
)

type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj,omitempty"`
}

func getUserId(c *gin.Context) int {
	return c.GetInt("userId")
}

func I18nWeb(c *gin.Context, key string, params ...string) string {
	return locale.I18n(c, key, params...)
}

func jsonMsg(c *gin.Context, msg string, err error) {
	jsonMsgObj(c, msg, nil, err)
}

func jsonMsgObj(c *gin.Context, msg string, obj any, err error) {
	m := Msg{Obj: obj}
	if err == nil {
		m.Success = true
		m.Msg = msg
	} else {
		m.Success = false
		m.Msg = msg
		logger.Warning(msg, "failed:", err)
	}
	c.JSON(http.StatusOK, m)
}

func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, Msg{Success: success, Msg: msg})
}

// jsonPoints is the reward-endpoint response shape the front end expects.
func jsonPoints(c *gin.Context, msg string, pointChange int) {
	c.JSON(http.StatusOK, gin.H{
		"message":     msg,
		"pointChange": pointChange,
	})
}

func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = I18nWeb(c, title)
	data["host"] = c.Request.Host
	data["version"] = config.GetVersion()
	c.HTML(http.StatusOK, name, data)
}

func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
