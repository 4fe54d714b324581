package roadmap_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/p-n-ai/edupilot/internal/roadmap"
)

func topicList(n int) []string {
	topics := make([]string, n)
	for i := range topics {
		topics[i] = fmt.Sprintf("topic-%d", i+1)
	}
	return topics
}

func TestAllocate_StandardOneTopicPerDay(t *testing.T) {
	got := roadmap.Allocate([]string{"a", "b", "c", "d", "e", "f"}, 10)

	want := []roadmap.StudyDay{
		{Day: 1, Tasks: []string{"a"}},
		{Day: 2, Tasks: []string{"b"}},
		{Day: 3, Tasks: []string{"c"}},
		{Day: 4, Tasks: []string{"d"}},
		{Day: 5, Tasks: []string{"e"}},
		{Day: 6, Tasks: []string{"f"}},
		{Day: 7, Tasks: []string{"Practice Problems"}},
		{Day: 8, Tasks: []string{"Reinforce Weak Topics"}},
		{Day: 9, Tasks: []string{"Weak Topic Revision"}},
		{Day: 10, Tasks: []string{"Full Revision", "Mock Test"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Allocate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocate_StandardCompressed(t *testing.T) {
	got := roadmap.Allocate([]string{"a", "b"}, 20)

	if len(got) != 20 {
		t.Fatalf("len(plan) = %d, want 20", len(got))
	}
	if diff := cmp.Diff([]string{"a", "b"}, got[0].Tasks); diff != "" {
		t.Errorf("day 1 tasks mismatch (-want +got):\n%s", diff)
	}

	rotation := []string{"Practice Problems", "Reinforce Weak Topics", "Timed Quiz Session"}
	for j := 0; j < 17; j++ {
		d := got[1+j]
		if d.Day != j+2 {
			t.Errorf("filler %d day = %d, want %d", j, d.Day, j+2)
		}
		if want := []string{rotation[j%3]}; !cmp.Equal(want, d.Tasks) {
			t.Errorf("day %d tasks = %v, want %v", d.Day, d.Tasks, want)
		}
	}

	wantTail := []roadmap.StudyDay{
		{Day: 19, Tasks: []string{"Weak Topic Revision"}},
		{Day: 20, Tasks: []string{"Full Revision", "Mock Test"}},
	}
	if diff := cmp.Diff(wantTail, got[18:]); diff != "" {
		t.Errorf("revision days mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocate_StandardMultipleTopicsPerDay(t *testing.T) {
	got := roadmap.Allocate(topicList(9), 5)

	// study_days = 3, active = 3, three topics a day.
	want := []roadmap.StudyDay{
		{Day: 1, Tasks: []string{"topic-1", "topic-2", "topic-3"}},
		{Day: 2, Tasks: []string{"topic-4", "topic-5", "topic-6"}},
		{Day: 3, Tasks: []string{"topic-7", "topic-8", "topic-9"}},
		{Day: 4, Tasks: []string{"Weak Topic Revision"}},
		{Day: 5, Tasks: []string{"Full Revision", "Mock Test"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Allocate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocate_StandardUnevenChunksLeaveGap(t *testing.T) {
	got := roadmap.Allocate(topicList(7), 8)

	// study_days = 6, active = 6, ceil(7/6) = 2 topics a day fills only four
	// days; no filler days remain, so days 5 and 6 are unused.
	want := []roadmap.StudyDay{
		{Day: 1, Tasks: []string{"topic-1", "topic-2"}},
		{Day: 2, Tasks: []string{"topic-3", "topic-4"}},
		{Day: 3, Tasks: []string{"topic-5", "topic-6"}},
		{Day: 4, Tasks: []string{"topic-7"}},
		{Day: 7, Tasks: []string{"Weak Topic Revision"}},
		{Day: 8, Tasks: []string{"Full Revision", "Mock Test"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Allocate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocate_StandardNoTopics(t *testing.T) {
	got := roadmap.Allocate(nil, 6)

	want := []roadmap.StudyDay{
		{Day: 1, Tasks: []string{"Practice Problems"}},
		{Day: 2, Tasks: []string{"Reinforce Weak Topics"}},
		{Day: 3, Tasks: []string{"Timed Quiz Session"}},
		{Day: 4, Tasks: []string{"Practice Problems"}},
		{Day: 5, Tasks: []string{"Weak Topic Revision"}},
		{Day: 6, Tasks: []string{"Full Revision", "Mock Test"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Allocate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocate_FastPath(t *testing.T) {
	tests := []struct {
		name      string
		topics    []string
		totalDays int
		want      []roadmap.StudyDay
	}{
		{
			name:      "two days puts everything on day one",
			topics:    topicList(5),
			totalDays: 2,
			want: []roadmap.StudyDay{
				{Day: 1, Tasks: topicList(5)},
				{Day: 2, Tasks: []string{"Full Revision"}},
			},
		},
		{
			name:      "three days splits across two study days",
			topics:    topicList(5),
			totalDays: 3,
			want: []roadmap.StudyDay{
				{Day: 1, Tasks: []string{"topic-1", "topic-2", "topic-3"}},
				{Day: 2, Tasks: []string{"topic-4", "topic-5"}},
				{Day: 3, Tasks: []string{"Full Revision"}},
			},
		},
		{
			name:      "one day shares the day number with revision",
			topics:    topicList(2),
			totalDays: 1,
			want: []roadmap.StudyDay{
				{Day: 1, Tasks: []string{"topic-1", "topic-2"}},
				{Day: 1, Tasks: []string{"Full Revision"}},
			},
		},
		{
			name:      "no topics leaves only revision",
			topics:    nil,
			totalDays: 3,
			want: []roadmap.StudyDay{
				{Day: 3, Tasks: []string{"Full Revision"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roadmap.Allocate(tt.topics, tt.totalDays)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Allocate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAllocate_CoversEveryTopicOnce(t *testing.T) {
	for n := 0; n <= 15; n++ {
		for totalDays := 1; totalDays <= 40; totalDays++ {
			topics := topicList(n)
			plan := roadmap.Allocate(topics, totalDays)

			var covered []string
			for _, d := range plan {
				for _, task := range d.Tasks {
					if strings.HasPrefix(task, "topic-") {
						covered = append(covered, task)
					}
				}
			}
			if !cmp.Equal(topics, covered, cmpopts.EquateEmpty()) {
				t.Fatalf("T=%d days=%d: covered %v, want %v", n, totalDays, covered, topics)
			}

			last := plan[len(plan)-1]
			if last.Day != totalDays {
				t.Fatalf("T=%d days=%d: last day = %d, want %d", n, totalDays, last.Day, totalDays)
			}
			if totalDays == 1 {
				continue
			}
			for i := 1; i < len(plan); i++ {
				if plan[i].Day <= plan[i-1].Day {
					t.Fatalf("T=%d days=%d: day numbers not increasing at %d: %d after %d",
						n, totalDays, i, plan[i].Day, plan[i-1].Day)
				}
			}
		}
	}
}

func TestAllocate_DoesNotAliasInput(t *testing.T) {
	topics := []string{"a", "b", "c"}
	plan := roadmap.Allocate(topics, 2)

	plan[0].Tasks[0] = "changed"
	if topics[0] != "a" {
		t.Errorf("input topics modified through plan: %v", topics)
	}
}
