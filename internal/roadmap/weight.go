package roadmap

import (
	"strings"

	"golang.org/x/text/cases"
)

// DefaultHardKeywords mark topics that usually take longer to learn.
var DefaultHardKeywords = []string{"Deadlock", "Normalization", "Scheduling", "Concurrency"}

// TopicWeight pairs a topic with its difficulty weight.
type TopicWeight struct {
	Topic  string `json:"topic"`
	Weight int    `json:"weight"`
}

// Weigher scores topic difficulty and breadth.
//
// Weights are reported alongside a plan but do not change how the allocator
// sizes its daily buckets.
type Weigher struct {
	keywords []string
}

// NewWeigher builds a Weigher for the given keywords. A nil or empty list
// selects DefaultHardKeywords.
func NewWeigher(keywords []string) *Weigher {
	if len(keywords) == 0 {
		keywords = DefaultHardKeywords
	}
	fold := cases.Fold()
	folded := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			folded = append(folded, fold.String(kw))
		}
	}
	return &Weigher{keywords: folded}
}

// Weight returns 1, plus 1 if the topic mentions a hard keyword, plus 1 if
// the topic has more than two words.
func (w *Weigher) Weight(topic string) int {
	weight := 1

	// A Caser is stateful, so each call gets its own.
	folded := cases.Fold().String(topic)
	for _, kw := range w.keywords {
		if strings.Contains(folded, kw) {
			weight++
			break
		}
	}

	if len(strings.Fields(topic)) > 2 {
		weight++
	}
	return weight
}

// Weights scores every topic, preserving order.
func (w *Weigher) Weights(topics []string) []TopicWeight {
	out := make([]TopicWeight, len(topics))
	for i, t := range topics {
		out[i] = TopicWeight{Topic: t, Weight: w.Weight(t)}
	}
	return out
}
