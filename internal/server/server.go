// Package server binds the services to HTTP using goa's muxer and codecs.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	goahttp "goa.design/goa/v3/http"
	httpmw "goa.design/goa/v3/http/middleware"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"devsites/internal/config"
	"devsites/internal/logger"
	"devsites/internal/metrics"
	"devsites/internal/services"
	apperrors "devsites/pkg/errors"
)

// Services groups the endpoints the server mounts
type Services struct {
	Health     *services.HealthService
	Contact    *services.ContactService
	Inquiry    *services.InquiryService
	Newsletter *services.NewsletterService
	Stats      *services.StatsService
}

// Server routes requests to the services
type Server struct {
	mux goahttp.Muxer
	svc Services
	log *logger.Logger
}

// New mounts every route and returns the full middleware chain:
// security headers, CORS, request id, logging, Prometheus, then the router.
func New(cfg *config.Config, svc Services, log *logger.Logger) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{mux: goahttp.NewMuxer(), svc: svc, log: log.Component("http")}
	s.mount()

	metricsHandler := promhttp.Handler()
	root := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			metricsHandler.ServeHTTP(w, r)
			return
		}
		s.mux.ServeHTTP(w, r)
	})

	var handler http.Handler = root
	handler = httpmw.PopulateRequestContext()(handler)
	handler = metrics.PrometheusMiddleware(handler)
	handler = requestLogging(s.log)(handler)
	handler = httpmw.RequestID()(handler)
	handler = cors(cfg.CORS, cfg.App.Debug)(handler)
	handler = securityHeaders(cfg.App)(handler)
	return handler
}

func (s *Server) mount() {
	s.mux.Handle("GET", "/health", s.health)
	s.mux.Handle("GET", "/api/", s.root)

	s.mux.Handle("POST", "/api/contact", s.submitContact)
	s.mux.Handle("POST", "/api/project-inquiry", s.submitInquiry)
	s.mux.Handle("POST", "/api/newsletter", s.subscribe)
	s.mux.Handle("GET", "/api/stats", s.stats)
	s.mux.Handle("GET", "/api/project-summary", s.projectSummary)
	s.mux.Handle("GET", "/api/pricing", s.pricing)

	s.mux.Handle("GET", "/api/admin/contacts", s.listContacts)
	s.mux.Handle("PATCH", "/api/admin/contacts/{id}/status", s.updateContactStatus)
	s.mux.Handle("GET", "/api/admin/inquiries", s.listInquiries)
	s.mux.Handle("GET", "/api/admin/newsletter", s.listSubscribers)
}

// requestContext pins goa's response encoder to JSON whatever the client
// sends in Accept. Money and the price catalog only have a JSON form.
func requestContext(r *http.Request) context.Context {
	return context.WithValue(r.Context(), goahttp.ContentTypeKey, "application/json")
}

func (s *Server) decode(r *http.Request, v interface{}) error {
	if err := goahttp.RequestDecoder(r).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.Validation("request body is required")
		}
		return apperrors.Wrap(apperrors.ErrCodeValidation, "invalid request body", err)
	}
	return nil
}

func (s *Server) encode(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	enc := goahttp.ResponseEncoder(ctx, w)
	w.WriteHeader(status)
	if err := enc.Encode(v); err != nil {
		s.log.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) fail(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	status, se := toServiceError(err)
	if se.Fault {
		s.log.Error("Request error", "method", r.Method, "path", r.URL.Path, "error_id", se.ID, "error", err)
	} else {
		s.log.Debug("Request rejected", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	s.encode(ctx, w, status, newErrorBody(se))
}

func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.Validation(name + " must be an integer")
	}
	return &v, nil
}

func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.Validation(name + " must be a boolean")
	}
	return &v, nil
}

func listPayload(r *http.Request) (*services.ListPayload, error) {
	skip, err := queryInt(r, "skip")
	if err != nil {
		return nil, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return nil, err
	}
	return &services.ListPayload{Skip: skip, Limit: limit}, nil
}
