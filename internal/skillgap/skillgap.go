// Package skillgap turns quiz accuracy into a mastery level, the weakest
// topic and a short study recommendation.
package skillgap

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/p-n-ai/edupilot/internal/platform/apperr"
)

// Mastery labels, indexed by classifier output.
const (
	LevelBeginner   = "Beginner"
	LevelDeveloping = "Developing"
	LevelProficient = "Proficient"
)

var masteryLabels = map[int]string{
	0: LevelBeginner,
	1: LevelDeveloping,
	2: LevelProficient,
}

// QuizInput holds per-topic accuracy (0-100) and average seconds per question.
type QuizInput struct {
	DSAccuracy   float64 `json:"ds_accuracy"`
	AlgoAccuracy float64 `json:"algo_accuracy"`
	DBMSAccuracy float64 `json:"dbms_accuracy"`
	OSAccuracy   float64 `json:"os_accuracy"`
	AvgTime      float64 `json:"avg_time"`
}

// Analysis is the result of a skill-gap analysis.
type Analysis struct {
	MasteryLevel string  `json:"mastery_level"`
	WeakestTopic string  `json:"weakest_topic"`
	OverallScore float64 `json:"overall_score"`
	Roadmap      string  `json:"roadmap"`
}

// Features is the classifier input, in training order:
// ds, algo, dbms, os, avg_time, overall_score, weakest_topic_score.
type Features [7]float64

const overallIndex = 5

// Classifier maps features to a mastery class in {0, 1, 2}.
type Classifier interface {
	Classify(ctx context.Context, f Features) (int, error)
}

// Validate checks accuracy and timing ranges.
func (q QuizInput) Validate() error {
	for _, s := range q.scores() {
		if s.score < 0 || s.score > 100 || math.IsNaN(s.score) {
			return apperr.Validation(s.field, "must be between 0 and 100, got %v", s.score)
		}
	}
	if q.AvgTime < 0 || math.IsNaN(q.AvgTime) {
		return apperr.Validation("avg_time", "must be non-negative, got %v", q.AvgTime)
	}
	return nil
}

type topicScore struct {
	field string
	name  string
	score float64
}

func (q QuizInput) scores() []topicScore {
	return []topicScore{
		{"ds_accuracy", "Data Structures", q.DSAccuracy},
		{"algo_accuracy", "Algorithms", q.AlgoAccuracy},
		{"dbms_accuracy", "DBMS", q.DBMSAccuracy},
		{"os_accuracy", "Operating Systems", q.OSAccuracy},
	}
}

// OverallScore is the weighted accuracy rounded to two decimals.
func (q QuizInput) OverallScore() float64 {
	return round2(0.30*q.DSAccuracy + 0.30*q.AlgoAccuracy + 0.20*q.DBMSAccuracy + 0.20*q.OSAccuracy)
}

// WeakestTopic returns the lowest-scoring topic. Ties go to the earlier topic.
func (q QuizInput) WeakestTopic() (string, float64) {
	scores := q.scores()
	weakest := scores[0]
	for _, s := range scores[1:] {
		if s.score < weakest.score {
			weakest = s
		}
	}
	return weakest.name, round2(weakest.score)
}

// Features builds the classifier input.
func (q QuizInput) Features() Features {
	_, weakest := q.WeakestTopic()
	return Features{
		q.DSAccuracy,
		q.AlgoAccuracy,
		q.DBMSAccuracy,
		q.OSAccuracy,
		q.AvgTime,
		q.OverallScore(),
		weakest,
	}
}

// Analyzer runs quiz input through a classifier.
type Analyzer struct {
	classifier Classifier
}

// NewAnalyzer creates an Analyzer. A nil classifier uses DefaultThresholds.
func NewAnalyzer(c Classifier) *Analyzer {
	if c == nil {
		c = DefaultThresholds
	}
	return &Analyzer{classifier: c}
}

// Analyze validates the input, classifies it and builds a recommendation.
func (a *Analyzer) Analyze(ctx context.Context, q QuizInput) (*Analysis, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	class, err := a.classifier.Classify(ctx, q.Features())
	if err != nil {
		return nil, &apperr.InternalError{Op: "classify quiz", Err: err}
	}
	level, ok := masteryLabels[class]
	if !ok {
		return nil, &apperr.InternalError{Op: "classify quiz", Err: fmt.Errorf("unknown mastery class %d", class)}
	}

	weakest, _ := q.WeakestTopic()
	analysis := &Analysis{
		MasteryLevel: level,
		WeakestTopic: weakest,
		OverallScore: q.OverallScore(),
		Roadmap:      Recommendation(level, weakest),
	}

	slog.Debug("quiz analyzed",
		"mastery_level", analysis.MasteryLevel,
		"weakest_topic", analysis.WeakestTopic,
		"overall_score", analysis.OverallScore,
	)
	return analysis, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
