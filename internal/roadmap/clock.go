package roadmap

import (
	"time"

	"github.com/p-n-ai/edupilot/internal/platform/apperr"
)

// DateLayout is the accepted exam date format.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// DaysUntilExam returns the whole calendar days from the clock's today to
// examDate, never less than 1.
func DaysUntilExam(clock Clock, examDate string) (int, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	now := clock.Now()

	exam, err := time.ParseInLocation(DateLayout, examDate, now.Location())
	if err != nil {
		return 0, &apperr.ValidationError{
			Field:   "exam_date",
			Message: "must be a valid date in YYYY-MM-DD format",
			Err:     err,
		}
	}

	// Compare dates at UTC midnight so DST shifts cannot shave off a day.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	target := time.Date(exam.Year(), exam.Month(), exam.Day(), 0, 0, 0, 0, time.UTC)

	// Unix seconds rather than Sub, which saturates past ~292 years.
	days := int((target.Unix() - today.Unix()) / secondsPerDay)
	return max(days, 1), nil
}
