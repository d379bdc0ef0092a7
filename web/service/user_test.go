package service

import (
	"testing"

	"hamlog/database"
	"hamlog/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, database.InitDB(":memory:"))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	setupDB(t)
	var s UserService

	user, err := s.Register("ham", "secret-pw", "ham@example.com", "Ham")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pw", user.Pw, "password must be stored hashed")
	assert.Equal(t, model.DefaultAvatar, user.ImgUrl)
	assert.Equal(t, 0, user.Point)
	assert.Nil(t, user.LastPost)

	got, err := s.Authenticate("ham", "secret-pw")
	require.NoError(t, err)
	assert.Equal(t, user.Id, got.Id)

	_, err = s.Authenticate("ham", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = s.Authenticate("nobody", "secret-pw")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegisterDuplicateNickname(t *testing.T) {
	setupDB(t)
	var s UserService

	_, err := s.Register("ham", "pw1", "ham@example.com", "")
	require.NoError(t, err)

	_, err = s.Register("ham", "pw2", "other@example.com", "")
	assert.ErrorIs(t, err, ErrDuplicateUser)

	_, err = s.Register("ham2", "pw3", "ham@example.com", "")
	assert.ErrorIs(t, err, ErrDuplicateUser, "duplicate email hits the unique index")
}

func TestUpdateProfileKeepsAvatarWhenNotReplaced(t *testing.T) {
	setupDB(t)
	var s UserService

	user, err := s.Register("ham", "pw", "ham@example.com", "")
	require.NoError(t, err)

	require.NoError(t, s.UpdateProfile(user.Id, "New Name", "hello", "new@example.com", ""))

	got, err := s.GetUser(user.Id)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "hello", got.Comment)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, model.DefaultAvatar, got.ImgUrl, "empty imgUrl must not clobber the avatar")
}
