package skillgap

import (
	"context"
	"fmt"
)

// ThresholdClassifier labels by overall score: below BeginnerBelow is 0,
// below ProficientFrom is 1, anything else is 2. These are the rules the
// offline training labels were generated with.
type ThresholdClassifier struct {
	BeginnerBelow  float64
	ProficientFrom float64
}

// DefaultThresholds matches the training labels.
var DefaultThresholds = ThresholdClassifier{BeginnerBelow: 50, ProficientFrom: 75}

// Validate checks that the thresholds are ordered and in range.
func (c ThresholdClassifier) Validate() error {
	if c.BeginnerBelow < 0 || c.ProficientFrom > 100 || c.BeginnerBelow > c.ProficientFrom {
		return fmt.Errorf("thresholds must satisfy 0 <= beginner (%v) <= proficient (%v) <= 100",
			c.BeginnerBelow, c.ProficientFrom)
	}
	return nil
}

func (c ThresholdClassifier) Classify(_ context.Context, f Features) (int, error) {
	overall := f[overallIndex]
	switch {
	case overall < c.BeginnerBelow:
		return 0, nil
	case overall < c.ProficientFrom:
		return 1, nil
	default:
		return 2, nil
	}
}

// ClassifierFunc adapts a plain function to Classifier.
type ClassifierFunc func(ctx context.Context, f Features) (int, error)

func (fn ClassifierFunc) Classify(ctx context.Context, f Features) (int, error) {
	return fn(ctx, f)
}
