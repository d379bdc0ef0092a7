package service

import (
	"time"

	"hamlog/config"
	"hamlog/database"
	"hamlog/logger"
	"hamlog/reward"
	"hamlog/util/common"
)

// ErrNegativeScore is an input-validation failure; the ledger itself never
// sees a negative score.
var ErrNegativeScore = common.NewError("final score must be non-negative")

// RewardService ties the pure reward rules to the user store: load state,
// evaluate, write back atomically.
type RewardService struct{}

// GrantPost runs the first-post-of-the-day evaluation for userId and, when it
// grants, applies the bonus with a conditional update. A concurrent duplicate
// submission makes the update miss; the state is re-read once and the second
// evaluation then sees the winner's last_post and grants nothing.
func (s *RewardService) GrantPost(userId int, now time.Time) (int, error) {
	loc := config.GetTimeLocation()

	for attempt := 0; attempt < 2; attempt++ {
		user, err := database.GetUser(userId)
		if err != nil {
			return 0, err
		}

		res := reward.EvaluatePost(reward.PostState{
			Point:    user.Point,
			LastPost: user.LastPost,
		}, now, loc)
		if !res.FirstToday {
			return 0, nil
		}

		ok, err := database.GrantPostReward(userId, res.PointDelta, res.NewLastPost, user.LastPost)
		if err != nil {
			return 0, err
		}
		if ok {
			return res.PointDelta, nil
		}
		logger.Debugf("post reward conflict for user %d, re-reading", userId)
	}
	// Both rounds lost the race: someone else granted today's bonus.
	return 0, nil
}

// GrantOx pays the quiz bonus for correct answers and stamps last_game either
// way, so the challenge page can show the game as played today.
func (s *RewardService) GrantOx(userId int, isCorrect bool, now time.Time) (int, error) {
	delta := reward.EvaluateOx(isCorrect)
	err := database.GrantGamePoints(userId, delta, now)
	if err != nil {
		return 0, err
	}
	return delta, nil
}

// GrantCard awards the final score one-to-one and stamps last_game.
func (s *RewardService) GrantCard(userId int, finalScore int, now time.Time) (int, error) {
	if finalScore < 0 {
		return 0, ErrNegativeScore
	}
	delta := reward.EvaluateCard(finalScore)
	err := database.GrantGamePoints(userId, delta, now)
	if err != nil {
		return 0, err
	}
	return delta, nil
}
