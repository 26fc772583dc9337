package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"prdforge/internal/export"
	"prdforge/internal/extract"
	"prdforge/internal/generation"
	"prdforge/internal/logging"
	"prdforge/internal/session"
	"prdforge/internal/workflow"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Get(logging.CategoryServer).Error("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// readUpload pulls the "file" part out of a multipart request and
// returns its bytes plus declared MIME type.
func (s *Server) readUpload(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		return nil, "", fmt.Errorf("parsing upload: %w", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("reading upload: %w", err)
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return data, mimeType, nil
}

// handleInitiateSession extracts the problem statement from the uploaded
// file, folds the historical PRDs into the system prompt and returns the
// fresh session.
func (s *Server) handleInitiateSession(w http.ResponseWriter, r *http.Request) {
	data, mimeType, err := s.readUpload(r)
	if errors.Is(err, http.ErrMissingFile) {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	problemStatement, err := extract.Extract(data, mimeType)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, extract.ErrUnsupportedFileType) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	docs, err := extract.ReadReferenceDocs(s.cfg.ReferenceDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sess, err := s.engine.CreateSession(problemStatement, docs, r.FormValue("scoringCriteria"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logging.Server("session %s initiated (%d reference docs)", sess.ID, len(docs))
	writeJSON(w, http.StatusOK, map[string]*session.Session{"session": sess})
}

type writePRDRequest struct {
	SessionID     string `json:"sessionId"`
	SectionNumber int    `json:"sectionNumber"`
	Action        string `json:"action"`
	Content       string `json:"content"`
	Feedback      string `json:"feedback"`
}

// handleWritePRD is the single action endpoint driving the state
// machine. sectionNumber in the request is the 0-based section index.
func (s *Server) handleWritePRD(w http.ResponseWriter, r *http.Request) {
	var req writePRDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	action, err := workflow.ParseAction(req.Action)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.Advance(r.Context(), req.SessionID, action, req.SectionNumber, req.Content, req.Feedback)
	if err != nil {
		s.writeAdvanceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) writeAdvanceError(w http.ResponseWriter, err error) {
	var unknown *workflow.UnknownSectionError
	var genErr *generation.Error
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "Session not found")
	case errors.As(err, &unknown):
		writeError(w, http.StatusBadRequest, unknown.Error())
	case errors.As(err, &genErr):
		logging.Get(logging.CategoryServer).Error("generation: %v", genErr)
		writeError(w, http.StatusBadGateway, "Error processing request")
	default:
		logging.Get(logging.CategoryServer).Error("advance: %v", err)
		writeError(w, http.StatusInternalServerError, "Error processing request")
	}
}

// handleExportPRD streams the consolidated document as a .docx
// attachment. An incomplete session is exportable only with ?assemble.
func (s *Server) handleExportPRD(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	assemble := r.URL.Query().Get("assemble") != ""

	sess, text, err := s.engine.ExportDocument(r.Context(), id, assemble)
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "Session not found")
		return
	case errors.Is(err, workflow.ErrNotReady):
		writeError(w, http.StatusBadRequest, "PRD is not yet completed")
		return
	case err != nil:
		logging.Get(logging.CategoryServer).Error("export: %v", err)
		writeError(w, http.StatusInternalServerError, "Error exporting document")
		return
	}

	doc, err := export.BuildDocx("Product Requirements Document", sess.CreatedAt, text, sess.FinalReview)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=PRD.docx")
	w.Header().Set("Content-Type", docxMIME)
	if _, err := w.Write(doc); err != nil {
		logging.Get(logging.CategoryServer).Error("writing docx: %v", err)
	}
}

// handleAnalyzeFile extracts text from an uploaded file without touching
// any session.
func (s *Server) handleAnalyzeFile(w http.ResponseWriter, r *http.Request) {
	data, mimeType, err := s.readUpload(r)
	if errors.Is(err, http.ErrMissingFile) {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := extract.Extract(data, mimeType)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFileType) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to analyze file")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
