package web

import (
	"encoding/json"
	"net/http"

	"github.com/krunkertools/bindsync/internal/history"
	"github.com/krunkertools/bindsync/internal/settings"
)

// apiRequest is the body accepted by every API endpoint. Endpoints read
// the fields they need and ignore the rest.
type apiRequest struct {
	Text    string `json:"text"`
	Source  string `json:"source"`
	Target  string `json:"target"`
	Pretty  bool   `json:"pretty"`
	Lenient bool   `json:"lenient"`
}

// apiResponse is the envelope every endpoint returns: {ok, text, error}.
type apiResponse struct {
	OK    bool   `json:"ok"`
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (apiRequest, bool) {
	var req apiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Error: "malformed request body"})
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// writeResult reports an operation outcome. Core validation failures are
// still HTTP 200: they are expected user input problems the page renders
// inline, not transport errors.
func writeResult(w http.ResponseWriter, text string, err error) {
	if err != nil {
		writeJSON(w, http.StatusOK, apiResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{OK: true, Text: text})
}

func load(text string, lenient bool) (settings.Value, error) {
	if lenient {
		return settings.LoadLenient(text)
	}
	return settings.Load(text)
}

// handleValidate checks one document, returning ok or a diagnostic.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	doc, err := load(req.Text, req.Lenient)
	sourceFields := 0
	if err == nil {
		sourceFields = doc.Len()
	}

	s.record(history.Entry{
		Operation:    history.OpValidate,
		Frontend:     "web",
		SourceFields: sourceFields,
	}, err)
	writeResult(w, "", err)
}

// handleFormat pretty-prints or minifies one document.
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	doc, err := load(req.Text, req.Lenient)
	if err != nil {
		writeResult(w, "", err)
		return
	}
	text, err := settings.Stringify(doc, req.Pretty)
	writeResult(w, text, err)
}

// handleExtract returns the controls-only form of the posted document,
// always pretty-printed for display in the page.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	var text string
	doc, err := load(req.Text, req.Lenient)
	sourceFields := 0
	if err == nil {
		sourceFields = doc.Len()
		var out settings.Value
		if out, err = settings.ExtractControls(doc); err == nil {
			text, err = settings.Stringify(out, true)
		}
	}

	s.record(history.Entry{
		Operation:    history.OpExtract,
		Frontend:     "web",
		SourceFields: sourceFields,
		Result:       text,
	}, err)
	writeResult(w, text, err)
}

// handleMerge merges source controls into the target document. The
// response is minified, ready to paste back into the game.
func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	var text string
	sourceFields, targetFields := 0, 0

	source, err := load(req.Source, req.Lenient)
	if err == nil {
		sourceFields = source.Len()
		var target settings.Value
		if target, err = load(req.Target, req.Lenient); err == nil {
			targetFields = target.Len()
			var merged settings.Value
			if merged, err = settings.MergeControls(source, target); err == nil {
				text, err = settings.Stringify(merged, false)
			}
		}
	}

	s.record(history.Entry{
		Operation:    history.OpMerge,
		Frontend:     "web",
		SourceFields: sourceFields,
		TargetFields: targetFields,
		Result:       text,
	}, err)
	writeResult(w, text, err)
}

// record logs an operation, best-effort.
func (s *Server) record(entry history.Entry, opErr error) {
	if s.hist == nil {
		return
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}
	if err := s.hist.Save(entry); err != nil {
		// History must never break the operation itself.
		return
	}
}
