// internal/httpserver/routes_rover.go
//
// Rover command endpoints.
//   - GET  /           → command form
//   - POST /           → form post (field "masterCommand"), renders result or rejection
//   - POST /api/rover  → JSON {"command": "..."} → final pose, trajectory, resets
//
// Each request parses and executes its own command. Malformed commands are
// answered with 422 and no partial result. Boundary resets are not errors;
// they are logged at warn level and returned to the caller.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/robalobadob/rover/internal/rover"
)

// runTrace adapts a rover.Result for structured logging.
type runTrace rover.Result

func (t runTrace) MarshalZerologObject(e *zerolog.Event) {
	e.Str("final", t.Final.String()).
		Int("steps", len(t.Trajectory)).
		Int("resets", len(t.Resets))
	if len(t.Resets) > 0 {
		steps := zerolog.Arr()
		for _, rs := range t.Resets {
			steps.Int(rs.Step)
		}
		e.Array("resetSteps", steps)
	}
}

// simulate runs one command and logs the outcome under a fresh run id.
func (s *Server) simulate(w http.ResponseWriter, r *http.Request, raw string) (string, rover.Result, error) {
	runID := uuid.NewString()
	w.Header().Set("X-Run-ID", runID)
	l := ctxLogger(r).With().Str("runId", runID).Logger()

	res, err := rover.Run(raw)
	if err != nil {
		l.Info().Err(err).Msg("command rejected")
		return runID, rover.Result{}, err
	}
	ev := l.Info()
	if len(res.Resets) > 0 {
		ev = l.Warn()
	}
	ev.Object("run", runTrace(res)).Msg("command executed")
	return runID, res, nil
}

// ------------------------------- form --------------------------------------

// pageData feeds assets/templates/index.html.
type pageData struct {
	Command    string
	Output     string
	Trajectory []string
	Resets     int
	Error      string
	Rule       string
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pageData{})
}

// handleFormPost reads masterCommand from the posted form and renders the outcome.
func (s *Server) handleFormPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxCommandBytes)
	if err := r.ParseForm(); err != nil {
		s.render(w, r, statusForBodyErr(err), pageData{Error: "could not read form"})
		return
	}
	raw := r.PostForm.Get("masterCommand")

	_, res, err := s.simulate(w, r, raw)
	if err != nil {
		data := pageData{Command: raw, Error: err.Error()}
		var mc *rover.MalformedCommandError
		if errors.As(err, &mc) {
			data.Error, data.Rule = mc.Reason, string(mc.Rule)
		}
		s.render(w, r, http.StatusUnprocessableEntity, data)
		return
	}

	steps := make([]string, len(res.Trajectory))
	for i, p := range res.Trajectory {
		steps[i] = p.String()
	}
	s.render(w, r, http.StatusOK, pageData{
		Command:    raw,
		Output:     res.Output(),
		Trajectory: steps,
		Resets:     len(res.Resets),
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.page.Execute(w, data); err != nil {
		ctxLogger(r).Error().Err(err).Msg("render page")
	}
}

// ------------------------------- API ---------------------------------------

type roverReq struct {
	Command string `json:"command"`
}

type roverRes struct {
	RunID      string        `json:"runId"`
	Output     string        `json:"output"`
	Final      rover.Pose    `json:"final"`
	Trajectory []rover.Pose  `json:"trajectory"`
	Resets     []rover.Reset `json:"resets"`
}

type malformedRes struct {
	Error  string     `json:"error"`
	RunID  string     `json:"runId"`
	Rule   rover.Rule `json:"rule"`
	Reason string     `json:"reason"`
}

// handleRover is the JSON form of the command post.
func (s *Server) handleRover(w http.ResponseWriter, r *http.Request) {
	var req roverReq
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.MaxCommandBytes))
	if err := dec.Decode(&req); err != nil {
		code := statusForBodyErr(err)
		if code == http.StatusRequestEntityTooLarge {
			writeJSON(w, code, map[string]string{"error": "too_large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_json"})
		return
	}

	runID, res, err := s.simulate(w, r, req.Command)
	if err != nil {
		out := malformedRes{Error: "malformed_command", RunID: runID, Reason: err.Error()}
		var mc *rover.MalformedCommandError
		if errors.As(err, &mc) {
			out.Rule, out.Reason = mc.Rule, mc.Reason
		}
		writeJSON(w, http.StatusUnprocessableEntity, out)
		return
	}

	writeJSON(w, http.StatusOK, roverRes{
		RunID:      runID,
		Output:     res.Output(),
		Final:      res.Final,
		Trajectory: res.Trajectory,
		Resets:     res.Resets,
	})
}

func statusForBodyErr(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
