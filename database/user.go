package database

import (
	"time"

	"hamlog/database/model"

	"gorm.io/gorm"
)

func GetUser(id int) (*model.User, error) {
	var user model.User
	err := db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByNickname returns nil, nil when no such user exists.
func GetUserByNickname(nickname string) (*model.User, error) {
	var user model.User
	err := db.Where("nickname = ?", nickname).First(&user).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func CreateUser(user *model.User) error {
	return db.Create(user).Error
}

func UpdateUserProfile(id int, fields map[string]any) error {
	return db.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}

func UpdateUserDDay(id int, dday *time.Time, goalEvent string) error {
	return db.Model(&model.User{}).Where("id = ?", id).Updates(map[string]any{
		"dday":       dday,
		"goal_event": goalEvent,
	}).Error
}

// GrantPostReward applies the daily post bonus with an optimistic
// compare-and-swap: the row is touched only if last_post still holds the
// value read before evaluation. When two requests race, exactly one update
// matches; the loser sees false and must re-read.
func GrantPostReward(id int, delta int, newLastPost time.Time, prevLastPost *time.Time) (bool, error) {
	// Timestamps are stored in UTC so the equality check compares the same
	// textual representation sqlite persisted.
	tx := db.Model(&model.User{}).Where("id = ?", id)
	if prevLastPost == nil {
		tx = tx.Where("last_post IS NULL")
	} else {
		tx = tx.Where("last_post = ?", prevLastPost.UTC())
	}
	result := tx.Updates(map[string]any{
		"point":     gorm.Expr("point + ?", delta),
		"last_post": newLastPost.UTC(),
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GrantGamePoints adds delta to the balance and stamps last_game in one
// additive update, so concurrent game submissions cannot lose increments.
// delta may be zero (a wrong OX answer still marks the challenge as played).
func GrantGamePoints(id int, delta int, now time.Time) error {
	return db.Model(&model.User{}).Where("id = ?", id).Updates(map[string]any{
		"point":     gorm.Expr("point + ?", delta),
		"last_game": now.UTC(),
	}).Error
}

func CountUsers() (int64, error) {
	var count int64
	err := db.Model(&model.User{}).Count(&count).Error
	return count, err
}

// GetAvatarUrls returns every img_url currently referenced by a user.
func GetAvatarUrls() ([]string, error) {
	var urls []string
	err := db.Model(&model.User{}).Where("img_url <> ''").Pluck("img_url", &urls).Error
	return urls, err
}
