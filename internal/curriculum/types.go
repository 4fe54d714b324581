package curriculum

import (
	"fmt"
	"strings"
)

// Syllabus is a named preset that can stand in for raw syllabus text.
type Syllabus struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Subject string `yaml:"subject" json:"subject,omitempty"`
	Level   string `yaml:"level" json:"level,omitempty"`
	Units   []Unit `yaml:"units" json:"units"`
}

// Unit is one block of a syllabus.
type Unit struct {
	Title  string   `yaml:"title" json:"title,omitempty"`
	Topics []string `yaml:"topics" json:"topics"`
}

// Text renders the preset in the "Unit N: topic, topic" form accepted by
// the syllabus parser.
func (s Syllabus) Text() string {
	blocks := make([]string, 0, len(s.Units))
	for i, u := range s.Units {
		blocks = append(blocks, fmt.Sprintf("Unit %d: %s", i+1, strings.Join(u.Topics, ", ")))
	}
	return strings.Join(blocks, " ")
}

// TopicCount returns the number of topics across all units.
func (s Syllabus) TopicCount() int {
	n := 0
	for _, u := range s.Units {
		n += len(u.Topics)
	}
	return n
}
