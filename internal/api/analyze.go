package api

import (
	"encoding/json"
	"net/http"

	"github.com/p-n-ai/edupilot/internal/events"
	"github.com/p-n-ai/edupilot/internal/platform/apperr"
	"github.com/p-n-ai/edupilot/internal/skillgap"
)

const predictionFailed = "Prediction failed"

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r, quizSchema)
	if err != nil {
		writeError(w, err, predictionFailed)
		return
	}
	if err := s.allow(r.Context(), routeAnalyze, clientID(r)); err != nil {
		writeError(w, err, predictionFailed)
		return
	}

	var in skillgap.QuizInput
	if err := json.Unmarshal(body, &in); err != nil {
		writeError(w, &apperr.ValidationError{Message: "invalid request body", Err: err}, predictionFailed)
		return
	}

	analysis, err := s.deps.Analyzer.Analyze(r.Context(), in)
	if err != nil {
		writeError(w, err, predictionFailed)
		return
	}

	s.logEvent(r.Context(), events.TypeQuizAnalyzed, map[string]any{
		"mastery_level": analysis.MasteryLevel,
		"weakest_topic": analysis.WeakestTopic,
		"overall_score": analysis.OverallScore,
	})
	writeJSON(w, http.StatusOK, analysis)
}
