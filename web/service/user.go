package service

import (
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"hamlog/database"
	"hamlog/database/model"
	"hamlog/util/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost    = 10
	maxAvatarSize = 5 << 20
)

var (
	ErrUserNotFound  = common.NewError("user not found")
	ErrWrongPassword = common.NewError("wrong password")
	ErrDuplicateUser = common.NewError("nickname or email already in use")
	ErrAvatarTooBig  = common.NewErrorf("avatar exceeds the %d byte limit", maxAvatarSize)
	ErrAvatarType    = common.NewError("unsupported avatar file type")
)

var avatarExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type UserService struct{}

// Register creates an account with a bcrypt-hashed password.
func (s *UserService) Register(nickname, password, email, name string) (*model.User, error) {
	existing, err := database.GetUserByNickname(nickname)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Pw:        string(hash),
		Nickname:  nickname,
		Name:      name,
		Email:     email,
		ImgUrl:    model.DefaultAvatar,
		CreatedAt: time.Now(),
	}
	err = database.CreateUser(user)
	if err != nil {
		// The unique indexes on nickname/email are the real guard; the
		// lookup above only gives a friendlier error for the common case.
		return nil, ErrDuplicateUser
	}
	return user, nil
}

// Authenticate checks a nickname/password pair against the stored hash.
func (s *UserService) Authenticate(nickname, password string) (*model.User, error) {
	user, err := database.GetUserByNickname(nickname)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.Pw), []byte(password))
	if err != nil {
		return nil, ErrWrongPassword
	}
	return user, nil
}

func (s *UserService) GetUser(id int) (*model.User, error) {
	return database.GetUser(id)
}

// UpdateProfile persists the editable profile fields. imgUrl is only written
// when a new avatar was uploaded.
func (s *UserService) UpdateProfile(id int, name, comment, email, imgUrl string) error {
	fields := map[string]any{
		"name":    name,
		"comment": comment,
		"email":   email,
	}
	if imgUrl != "" {
		fields["img_url"] = imgUrl
	}
	return database.UpdateUserProfile(id, fields)
}

// SetDDay stores the goal date (date component only) and its label.
func (s *UserService) SetDDay(id int, dday *time.Time, goalEvent string) error {
	return database.UpdateUserDDay(id, dday, goalEvent)
}

// SaveAvatar writes an uploaded image into uploadDir under a random name and
// returns the public URL path for it.
func (s *UserService) SaveAvatar(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, error) {
	if file.Size > maxAvatarSize {
		return "", ErrAvatarTooBig
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !avatarExts[ext] {
		return "", ErrAvatarType
	}

	if err := os.MkdirAll(uploadDir, 0o750); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		return "", err
	}
	return path.Join("/uploads", name), nil
}
