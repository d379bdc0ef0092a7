package model

import "time"

// DefaultAvatar is served from the embedded assets, so a fresh account always
// has a picture.
const DefaultAvatar = "/assets/images/default_profile.svg"

// User mirrors the users table. Pw holds a bcrypt hash, never plaintext.
// LastPost and LastGame are nullable on purpose: nil means the user has never
// earned a post reward / never finished a game.
type User struct {
	Id        int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Pw        string     `json:"-" gorm:"type:varchar(255);not null"`
	Nickname  string     `json:"nickname" gorm:"type:varchar(20);not null;uniqueIndex"`
	Name      string     `json:"name" gorm:"type:varchar(20)"`
	Email     string     `json:"email" gorm:"type:varchar(100);not null;uniqueIndex"`
	Comment   string     `json:"comment" gorm:"type:varchar(255)"`
	ImgUrl    string     `json:"img_url" gorm:"type:varchar(255)"`
	CreatedAt time.Time  `json:"created_at" gorm:"not null"`
	Point     int        `json:"point" gorm:"not null;default:0"`
	LastPost  *time.Time `json:"last_post"`
	LastGame  *time.Time `json:"last_game"`
	DDay      *time.Time `json:"dday" gorm:"column:dday"`
	GoalEvent string     `json:"goal_event" gorm:"type:varchar(255)"`
}

func (User) TableName() string {
	return "users"
}

// Log is one journal entry. Deleting a user cascades to their logs.
type Log struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId    int       `json:"user_id" gorm:"index;not null"`
	User      *User     `json:"-" gorm:"foreignKey:UserId;references:Id;constraint:OnDelete:CASCADE"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

func (Log) TableName() string {
	return "logs"
}
