package tutor

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// Server serves the tutorial pages over HTTP.
type Server struct {
	registry *Registry
	dataDir  string
	addr     string
	tmpl     *template.Template
	httpSrv  *http.Server
	listener net.Listener
	running  bool
	mutex    sync.RWMutex
}

// NewServer wires the lesson registry into the route table. dataDir is the
// directory holding the HR dataset files.
func NewServer(registry *Registry, dataDir, addr string) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		registry: registry,
		dataDir:  dataDir,
		addr:     addr,
		tmpl:     tmpl,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /lessons/{slug}", s.handleLesson)
	mux.HandleFunc("POST /lessons/{slug}", s.handleLesson)
	s.httpSrv = &http.Server{Handler: s.withRequestLog(mux)}

	return s, nil
}

// Handler returns the server's route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start begins listening and serving in the background.
func (s *Server) Start() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return fmt.Errorf("server is already running")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %v", s.addr, err)
	}
	s.listener = listener
	s.running = true

	log.Printf("SQL tutorial started on http://localhost%s", s.addr)
	log.Printf("Serving %d lessons", len(s.registry.Lessons()))

	go func() {
		if err := s.httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Serve error: %v", err)
		}
	}()

	return nil
}

// Stop shuts the server down, letting in-flight renders finish.
func (s *Server) Stop() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.running {
		return fmt.Errorf("server is not running")
	}
	s.running = false

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.running
}

// withRequestLog tags each request with an ID and logs its timing.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("request %s: %s %s (%v)", id, r.Method, r.URL.Path, time.Since(start))
	})
}

// RunServer starts the tutorial server and handles graceful shutdown on
// SIGINT/SIGTERM.
func RunServer(registry *Registry, dataDir, addr string) error {
	server, err := NewServer(registry, dataDir, addr)
	if err != nil {
		return err
	}
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("Received shutdown signal, stopping server...")

	if err := server.Stop(); err != nil {
		log.Printf("Error stopping server: %v", err)
	}

	log.Println("Server stopped successfully")
	return nil
}
