// Package reward holds the daily point rules. Everything in here is a pure
// function of its inputs; loading and persisting user state is the caller's
// problem, which keeps the rules testable with fixed clocks.
package reward

import "time"

const (
	// PostBonus is granted for the first journal log of a calendar day.
	PostBonus = 10
	// OxBonus is granted for every correct OX quiz answer, with no daily cap.
	OxBonus = 5
)

// PostState is the slice of a user record the post-reward rule reads.
type PostState struct {
	Point    int
	LastPost *time.Time
}

// PostResult is the decision for one journal post.
type PostResult struct {
	PointDelta  int
	NewLastPost time.Time
	FirstToday  bool
}

// SameCalendarDay reports whether a and b fall on the same calendar date in
// loc. This is date-component equality, not a rolling 24h window: 23:59 and
// 00:01 the next day are different days.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// EvaluatePost decides whether a journal post written at now earns the daily
// bonus. The first post of a calendar day pays PostBonus and advances
// LastPost; any later post the same day changes nothing.
func EvaluatePost(state PostState, now time.Time, loc *time.Location) PostResult {
	if state.LastPost != nil && SameCalendarDay(*state.LastPost, now, loc) {
		return PostResult{
			PointDelta:  0,
			NewLastPost: *state.LastPost,
			FirstToday:  false,
		}
	}
	return PostResult{
		PointDelta:  PostBonus,
		NewLastPost: now,
		FirstToday:  true,
	}
}

// EvaluateOx returns the point delta for an OX quiz answer. Correct answers
// always pay out; there is deliberately no once-per-day gate here, only
// journal posts are gated.
func EvaluateOx(isCorrect bool) int {
	if isCorrect {
		return OxBonus
	}
	return 0
}

// EvaluateCard returns the point delta for a finished card game. The score is
// the award, one to one. Callers must reject negative scores before calling.
func EvaluateCard(finalScore int) int {
	return finalScore
}
