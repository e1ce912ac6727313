package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"patternd/internal/observer"
	"patternd/internal/seq"
	"patternd/pkg/types"
)

// maxRangeValues bounds GET /range responses.
const maxRangeValues = 10_000

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Notify(ctx context.Context, msg string) observer.Report
	Subscribe(fn func(ctx context.Context, msg string) error) (observer.Subscription, error)
	Events() []string
	Agent() types.AgentResponse
	ChangeState(state string) (types.AgentResponse, error)
	House() types.HouseResponse
	HouseOn() types.HouseResponse
	HouseOff() types.HouseResponse
	Ready() bool
}

// NewMux builds the chi router for svc.
func NewMux(svc Service, opts Options) http.Handler {
	o := opts.withDefaults()
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, logging, recoverer, metrics
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(o.Logger))
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if len(o.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: o.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			MaxAge:         300,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	// JSON endpoints are compressed; the websocket route must stay hijackable.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5))

		r.Post("/notify", func(w http.ResponseWriter, r *http.Request) {
			var req types.NotifyRequest
			if !decodeJSON(w, r, o.MaxBodyBytes, &req) {
				return
			}
			rep := svc.Notify(r.Context(), req.Message)
			resp := types.NotifyResponse{Subscribers: rep.Attempted, Failures: []types.DeliveryFailure{}}
			for _, f := range rep.Failures {
				resp.Failures = append(resp.Failures, types.DeliveryFailure{
					Index:          f.Index,
					SubscriptionID: f.ID.String(),
					Error:          f.Err.Error(),
				})
			}
			writeJSON(w, http.StatusOK, resp)
		})

		r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, types.EventsResponse{Events: svc.Events()})
		})

		r.Get("/agent", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, svc.Agent())
		})

		r.Put("/agent/state", func(w http.ResponseWriter, r *http.Request) {
			var req types.ChangeStateRequest
			if !decodeJSON(w, r, o.MaxBodyBytes, &req) {
				return
			}
			resp, err := svc.ChangeState(req.State)
			if err != nil {
				writeJSONError(w, statusFor(err), err.Error())
				return
			}
			writeJSON(w, http.StatusOK, resp)
		})

		r.Get("/house", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, svc.House())
		})
		r.Post("/house/on", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, svc.HouseOn())
		})
		r.Post("/house/off", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, svc.HouseOff())
		})

		r.Get("/range", handleRange)
	})

	r.Get("/events/ws", newEventStream(svc, o).ServeHTTP)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// decodeJSON enforces content type and body size, then decodes into v.
// It writes the error response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func handleRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := map[string]int{"start": 0, "end": 0, "step": 1, "limit": 1000}
	for name := range params {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, name+" must be an integer")
			return
		}
		params[name] = n
	}
	if params["limit"] > maxRangeValues {
		params["limit"] = maxRangeValues
	}
	s, err := seq.Range(params["start"], params["end"], params["step"])
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	values, err := seq.Collect(s, params["limit"])
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	if values == nil {
		values = []int{}
	}
	writeJSON(w, http.StatusOK, types.RangeResponse{Values: values})
}
