// Package server exposes the encoder over HTTP: a posted input document
// comes back as an .xlsx download.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/adnsv/go-zipxl/xl"
)

// MaxBodyBytes bounds the size of an accepted input document.
const MaxBodyBytes = 32 << 20

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	var eb errorBody
	eb.Error.Code = code
	eb.Error.Message = message
	_ = json.NewEncoder(w).Encode(eb)
}

type Server struct {
	enc     *xl.Encoder
	log     *slog.Logger
	r       *mux.Router
	maxBody int64
}

func New(enc *xl.Encoder, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{enc: enc, log: log, r: mux.NewRouter(), maxBody: MaxBodyBytes}

	s.r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.r.HandleFunc("/v1/workbooks", s.handleEncode).Methods(http.MethodPost)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("content-type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.log.Info("rejected oversized input document", "remote", r.RemoteAddr, "limit", tooLarge.Limit)
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "unreadable_body", err.Error())
		return
	}

	cfg, err := s.enc.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		s.log.Info("rejected input document", "remote", r.RemoteAddr, "err", err)
		writeError(w, http.StatusBadRequest, "invalid_config", err.Error())
		return
	}

	p, err := s.enc.Encode(cfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_config", err.Error())
		return
	}

	blob, err := p.Bytes()
	if err != nil {
		s.log.Error("archive failed", "filename", cfg.Filename, "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	if err := (xl.ResponseSink{W: w}).Deliver(p.Name(), blob); err != nil {
		s.log.Warn("delivery interrupted", "filename", cfg.Filename, "err", err)
		return
	}
	s.log.Info("delivered workbook", "name", p.Name(), "bytes", len(blob), "digest", p.Digest())
}
