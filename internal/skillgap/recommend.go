package skillgap

import "fmt"

var recommendations = map[string]string{
	LevelBeginner: "Start with the fundamentals. Focus on core concepts in %s " +
		"before moving on. Use beginner-friendly resources like GeeksforGeeks, " +
		"Khan Academy, or introductory YouTube playlists. Aim to complete basic " +
		"exercises daily and revisit theory until it feels comfortable.",
	LevelDeveloping: "You have a solid base, now sharpen it. Your weakest area is %s. " +
		"Work through intermediate problem sets on LeetCode or HackerRank. " +
		"Review topic-specific notes, attempt timed quizzes, and focus on " +
		"understanding 'why' solutions work, not just 'what' they are.",
	LevelProficient: "Great performance overall! To stay sharp, tackle advanced problems in " +
		"%s and explore system design or competitive programming. " +
		"Contribute to open source, mentor peers, or attempt mock interviews to " +
		"consolidate mastery and uncover any hidden gaps.",
}

const fallbackRecommendation = "Keep practising consistently!"

// Recommendation returns study guidance for a mastery level focused on the
// weakest topic.
func Recommendation(level, weakestTopic string) string {
	tmpl, ok := recommendations[level]
	if !ok {
		return fallbackRecommendation
	}
	return fmt.Sprintf(tmpl, weakestTopic)
}
