package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/p-n-ai/edupilot/internal/events"
	"github.com/p-n-ai/edupilot/internal/export"
	"github.com/p-n-ai/edupilot/internal/platform/apperr"
	"github.com/p-n-ai/edupilot/internal/roadmap"
)

const roadmapFailed = "Roadmap generation failed"

// roadmapRequest is the wire form of a plan request. SyllabusID selects a
// preset when SyllabusText is empty.
type roadmapRequest struct {
	SyllabusText string `json:"syllabus_text"`
	SyllabusID   string `json:"syllabus_id"`
	ExamDate     string `json:"exam_date"`
	HoursPerDay  int    `json:"hours_per_day"`
}

func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	plan, err := s.planFromHTTP(w, r)
	if err != nil {
		writeError(w, err, roadmapFailed)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleGenerateRoadmapXLSX(w http.ResponseWriter, r *http.Request) {
	plan, err := s.planFromHTTP(w, r)
	if err != nil {
		writeError(w, err, roadmapFailed)
		return
	}

	// Render fully before writing headers so a failure can still become a 500.
	var buf bytes.Buffer
	if err := export.WritePlan(&buf, plan); err != nil {
		writeError(w, &apperr.InternalError{Op: "export workbook", Err: err}, roadmapFailed)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="study-plan.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to write workbook", "error", err)
	}
}

func (s *Server) planFromHTTP(w http.ResponseWriter, r *http.Request) (*roadmap.StudyPlan, error) {
	body, err := readBody(w, r, roadmapSchema)
	if err != nil {
		return nil, err
	}
	if err := s.allow(r.Context(), routeRoadmap, clientID(r)); err != nil {
		return nil, err
	}
	return s.generate(r.Context(), body)
}

// generate decodes an already validated body, resolves presets and builds
// the plan.
func (s *Server) generate(ctx context.Context, body []byte) (*roadmap.StudyPlan, error) {
	var req roadmapRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &apperr.ValidationError{Message: "invalid request body", Err: err}
	}

	text, source, err := s.syllabusText(req)
	if err != nil {
		return nil, err
	}

	plan, err := s.deps.Generator.Generate(ctx, roadmap.Request{
		SyllabusText: text,
		ExamDate:     req.ExamDate,
		HoursPerDay:  req.HoursPerDay,
	})
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"total_days":    plan.TotalDays,
		"total_topics":  plan.TotalTopics,
		"burnout_risk":  string(plan.BurnoutRisk),
		"hours_per_day": req.HoursPerDay,
		"source":        source,
		"fingerprint":   events.Fingerprint(text),
	}
	if source == sourcePreset {
		data["syllabus_id"] = req.SyllabusID
	}
	s.logEvent(ctx, events.TypeRoadmapGenerated, data)

	return plan, nil
}

const (
	sourceText   = "text"
	sourcePreset = "preset"
)

func (s *Server) syllabusText(req roadmapRequest) (string, string, error) {
	if req.SyllabusText != "" || req.SyllabusID == "" {
		return req.SyllabusText, sourceText, nil
	}
	if s.deps.Syllabi != nil {
		if syl, ok := s.deps.Syllabi.Get(req.SyllabusID); ok {
			return syl.Text(), sourcePreset, nil
		}
	}
	return "", "", apperr.Validation("syllabus_id", "unknown syllabus %q", req.SyllabusID)
}
