package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/p-n-ai/edupilot/internal/platform/apperr"
	"github.com/p-n-ai/edupilot/internal/roadmap"
	"github.com/p-n-ai/edupilot/internal/usage"
)

// socketReply answers one request message. Exactly one of Plan and Error is set.
type socketReply struct {
	Session string             `json:"session"`
	Plan    *roadmap.StudyPlan `json:"plan,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// handleRoadmapSocket serves plans over a websocket. Each text message is a
// roadmap request and gets one reply; bad requests do not end the session.
func (s *Server) handleRoadmapSocket(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	session := uuid.NewString()
	client := clientID(r)
	slog.Info("roadmap session opened", "session", session, "client", client)

	for {
		typ, msg, err := c.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				slog.Info("roadmap session closed", "session", session)
			default:
				slog.Warn("roadmap session ended", "session", session, "error", err)
			}
			return
		}

		reply := socketReply{Session: session}
		if typ != websocket.MessageText {
			reply.Error = "messages must be JSON text"
		} else if plan, err := s.socketPlan(r, client, msg); err != nil {
			reply.Error = socketError(err)
		} else {
			reply.Plan = plan
		}

		if err := wsjson.Write(ctx, c, reply); err != nil {
			slog.Warn("websocket write failed", "session", session, "error", err)
			return
		}
	}
}

func (s *Server) socketPlan(r *http.Request, client string, msg []byte) (*roadmap.StudyPlan, error) {
	if err := validateBody(roadmapSchema, msg); err != nil {
		return nil, err
	}
	if err := s.allow(r.Context(), routeRoadmap, client); err != nil {
		return nil, err
	}
	return s.generate(r.Context(), msg)
}

func socketError(err error) string {
	switch {
	case apperr.IsValidation(err):
		return err.Error()
	case errors.Is(err, usage.ErrQuotaExceeded):
		return "daily request limit reached"
	case apperr.IsInternal(err):
		slog.Error("roadmap generation failed", "error", err)
		return roadmapFailed + ": " + err.Error()
	default:
		slog.Error("roadmap generation failed", "error", err, "kind", "unexpected")
		return roadmapFailed + ": internal error"
	}
}
