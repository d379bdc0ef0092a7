package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserKey = "LOGIN_USER"

// SetLoginUser stores the authenticated user id in the cookie session.
func SetLoginUser(c *gin.Context, userId int) error {
	s := sessions.Default(c)
	s.Set(loginUserKey, userId)
	return s.Save()
}

// GetLoginUserId returns the logged-in user id, or false when the session
// carries none.
func GetLoginUserId(c *gin.Context) (int, bool) {
	s := sessions.Default(c)
	obj := s.Get(loginUserKey)
	if obj == nil {
		return 0, false
	}
	id, ok := obj.(int)
	if !ok {
		return 0, false
	}
	return id, true
}

func IsLogin(c *gin.Context) bool {
	_, ok := GetLoginUserId(c)
	return ok
}

// ClearSession destroys the session, logging the user out.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{MaxAge: -1, Path: "/"})
	return s.Save()
}
