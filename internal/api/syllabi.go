package api

import (
	"net/http"

	"github.com/p-n-ai/edupilot/internal/curriculum"
)

// syllabusDetail is a preset with its rendered text, ready to paste into a
// roadmap request.
type syllabusDetail struct {
	curriculum.Syllabus
	SyllabusText string `json:"syllabus_text"`
	TopicCount   int    `json:"topic_count"`
}

func (s *Server) handleListSyllabi(w http.ResponseWriter, r *http.Request) {
	list := []curriculum.Syllabus{}
	if s.deps.Syllabi != nil {
		list = s.deps.Syllabi.All()
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetSyllabus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if s.deps.Syllabi != nil {
		if syl, ok := s.deps.Syllabi.Get(id); ok {
			writeJSON(w, http.StatusOK, syllabusDetail{
				Syllabus:     syl,
				SyllabusText: syl.Text(),
				TopicCount:   syl.TopicCount(),
			})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, errorBody{Detail: "syllabus not found: " + id})
}
