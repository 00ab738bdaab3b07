package quiz

import "github.com/digital-aware/portal/internal/catalog"

// Score reduces a finished attempt's answer records into a percentage.
// Answers are matched to questions by ID, so the caller may pass them in any
// order. A question without a matching record simply earns nothing; a
// zero-point question contributes to neither side of the ratio. With no
// obtainable points the score is 0.
func Score(questions []catalog.Question, answers []AnswerRecord) float64 {
	earnedByQ := make(map[string]int, len(answers))
	for _, a := range answers {
		earnedByQ[a.QuestionID] = a.EarnedPoints
	}
	totalPossible := 0
	totalEarned := 0
	for _, q := range questions {
		totalPossible += q.Points
		totalEarned += earnedByQ[q.ID]
	}
	if totalPossible <= 0 {
		return 0
	}
	score := float64(totalEarned) / float64(totalPossible) * 100
	return clampScore(score)
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
