// Package moltbooktest provides a fake Moltbook API server for tests.
package moltbooktest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Request is a snapshot of one request the fake server received.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
	Header   http.Header
}

type response struct {
	status int
	body   string
}

// Server queues canned responses and records every request. Responses
// are served in FIFO order; once the queue is empty every call gets a
// plain {"success": true}.
type Server struct {
	httpServer *httptest.Server

	mu        sync.Mutex
	responses []response
	requests  []Request
}

func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		httpServer: nil,
		mu:         sync.Mutex{},
		responses:  nil,
		requests:   nil,
	}

	s.httpServer = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.httpServer.Close)

	return s
}

func (s *Server) URL() string {
	return s.httpServer.URL
}

// RespondJSON enqueues a JSON response with the given status.
func (s *Server) RespondJSON(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses = append(s.responses, response{status: status, body: body})
}

// RespondStatus enqueues an empty-bodied response with the given
// status, for simulating bare 401/429 replies.
func (s *Server) RespondStatus(status int) {
	s.RespondJSON(status, "")
}

// LastRequest returns the most recent request, or false when nothing
// has been received yet.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return Request{}, false
	}

	return s.requests[len(s.requests)-1], true
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)

	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Body:     string(body),
		Header:   r.Header.Clone(),
	})

	next := response{status: http.StatusOK, body: `{"success": true}`}
	if len(s.responses) > 0 {
		next = s.responses[0]
		s.responses = s.responses[1:]
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(next.status)
	_, _ = w.Write([]byte(next.body))
}
