package database

import (
	"time"

	"hamlog/database/model"
)

func AddLog(log *model.Log) error {
	return db.Create(log).Error
}

// GetLogs returns all of a user's journal entries, newest first.
func GetLogs(userId int) ([]*model.Log, error) {
	var logs []*model.Log
	err := db.Where("user_id = ?", userId).Order("created_at desc").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// GetRecentLogs returns the newest entries for the dashboard.
func GetRecentLogs(userId int, limit int) ([]*model.Log, error) {
	var logs []*model.Log
	err := db.Where("user_id = ?", userId).Order("created_at desc").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// GetLog fetches a single entry scoped to its owner; nil, nil when absent.
func GetLog(id int, userId int) (*model.Log, error) {
	var log model.Log
	err := db.Where("id = ? AND user_id = ?", id, userId).First(&log).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func CountLogsSince(t time.Time) (int64, error) {
	var count int64
	err := db.Model(&model.Log{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}
