package graphql

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/murkotick/storefront-graph/internal/pkg/session"
)

// SessionHeader optionally names the caller's cart owner.
const SessionHeader = "X-Session-ID"

// NewHTTPHandler serves the schema on /graphql and a liveness probe on /healthz.
func NewHTTPHandler(schema *graphql.Schema, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()
	mux.Handle("/graphql", withSession(&relay.Handler{Schema: schema}, logger))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func withSession(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		if !session.Valid(id) {
			logger.WarnContext(r.Context(), "rejected session header", "length", len(id))
			writeError(w, invalidArgument("invalid "+SessionHeader+" header"))
			return
		}
		next.ServeHTTP(w, r.WithContext(session.WithID(r.Context(), id)))
	})
}

// writeError renders a request-level failure in the GraphQL response shape.
func writeError(w http.ResponseWriter, e *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"errors": []map[string]any{{
			"message":    e.Message,
			"extensions": e.Extensions(),
		}},
	})
}
