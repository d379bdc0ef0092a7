package service

import (
	"time"

	"hamlog/database"
	"hamlog/database/model"
	"hamlog/util/common"
)

var ErrEmptyTitle = common.NewError("log title is required")

// The dashboard shows this many recent entries.
const recentLogCount = 3

type LogService struct{}

func (s *LogService) CreateLog(userId int, title, content string, now time.Time) (*model.Log, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	log := &model.Log{
		UserId:    userId,
		Title:     title,
		Content:   content,
		CreatedAt: now,
	}
	err := database.AddLog(log)
	if err != nil {
		return nil, err
	}
	return log, nil
}

func (s *LogService) GetLogs(userId int) ([]*model.Log, error) {
	return database.GetLogs(userId)
}

func (s *LogService) GetRecentLogs(userId int) ([]*model.Log, error) {
	return database.GetRecentLogs(userId, recentLogCount)
}

func (s *LogService) GetLog(id int, userId int) (*model.Log, error) {
	return database.GetLog(id, userId)
}
