package roadmap

const (
	// fastPathMaxDays is the longest horizon handled by the short-exam path.
	fastPathMaxDays = 3
	// revisionDays are reserved at the end of a standard plan.
	revisionDays = 2
)

// Task labels for non-topic days.
const (
	TaskFullRevision      = "Full Revision"
	TaskWeakTopicRevision = "Weak Topic Revision"
	TaskMockTest          = "Mock Test"
)

// fillerTasks rotate across practice days left over after topic days.
var fillerTasks = []string{
	"Practice Problems",
	"Reinforce Weak Topics",
	"Timed Quiz Session",
}

// StudyDay is one numbered day of a plan.
type StudyDay struct {
	Day   int      `json:"day"`
	Tasks []string `json:"tasks"`
}

// Allocate distributes topics across totalDays and appends revision days.
// Horizons of three days or fewer take a fast path with a single revision
// day; longer horizons reserve two revision days and fill spare days with
// practice tasks.
func Allocate(topics []string, totalDays int) []StudyDay {
	if totalDays <= fastPathMaxDays {
		return allocateShort(topics, totalDays)
	}
	return allocateStandard(topics, totalDays)
}

func allocateShort(topics []string, totalDays int) []StudyDay {
	studyDays := max(totalDays-1, 1)

	plan := chunkTopics(topics, perDay(len(topics), studyDays))

	// With a one-day horizon this shares a day number with the topic day.
	return append(plan, StudyDay{Day: totalDays, Tasks: []string{TaskFullRevision}})
}

func allocateStandard(topics []string, totalDays int) []StudyDay {
	total := len(topics)
	studyDays := totalDays - revisionDays

	// Plenty of time: teach two topics a day and keep the rest for practice.
	activeDays := min(studyDays, total)
	if studyDays > 2*total {
		activeDays = ceilDiv(total, 2)
	}

	plan := chunkTopics(topics, perDay(total, activeDays))

	day := len(plan) + 1
	for j := range studyDays - activeDays {
		plan = append(plan, StudyDay{
			Day:   day,
			Tasks: []string{fillerTasks[j%len(fillerTasks)]},
		})
		day++
	}

	return append(plan,
		StudyDay{Day: totalDays - 1, Tasks: []string{TaskWeakTopicRevision}},
		StudyDay{Day: totalDays, Tasks: []string{TaskFullRevision, TaskMockTest}},
	)
}

// chunkTopics splits topics into consecutive days of size topics each,
// numbered from 1.
func chunkTopics(topics []string, size int) []StudyDay {
	plan := make([]StudyDay, 0, ceilDiv(len(topics), size)+revisionDays)
	for i := 0; i < len(topics); i += size {
		end := min(i+size, len(topics))
		tasks := make([]string, end-i)
		copy(tasks, topics[i:end])
		plan = append(plan, StudyDay{Day: len(plan) + 1, Tasks: tasks})
	}
	return plan
}

// perDay is ceil(total/days), or 1 when there is nothing to divide.
func perDay(total, days int) int {
	if total == 0 || days == 0 {
		return 1
	}
	return ceilDiv(total, days)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
