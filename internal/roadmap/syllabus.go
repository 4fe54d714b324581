package roadmap

import (
	"strings"
	"unicode"
)

// unitMarker separates syllabus blocks. Matching is case-sensitive.
const unitMarker = "Unit"

// topicCutset holds the numbering and punctuation trimmed from each fragment.
const topicCutset = "-:;0123456789."

// ParseSyllabus splits raw syllabus text into an ordered list of topics.
// Text is split on every "Unit" marker, each block on commas, and each
// fragment is trimmed of numbering and punctuation. Empty fragments are dropped.
func ParseSyllabus(text string) []string {
	var topics []string
	for _, block := range strings.Split(text, unitMarker) {
		for _, fragment := range strings.Split(block, ",") {
			topic := strings.TrimFunc(fragment, isTopicEdge)
			if topic != "" {
				topics = append(topics, topic)
			}
		}
	}
	return topics
}

func isTopicEdge(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(topicCutset, r)
}
