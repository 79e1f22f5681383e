// Package platform is a typed REST client for the external commerce platform.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const instrumentationName = "github.com/murkotick/storefront-graph/internal/platform"

// Scope selects the OAuth scope set a request is authorized with.
type Scope int

const (
	ScopeDefault Scope = iota
	ScopeShoppingList
	ScopeOrder
)

func (s Scope) String() string {
	switch s {
	case ScopeShoppingList:
		return "shopping_list"
	case ScopeOrder:
		return "order"
	default:
		return "default"
	}
}

// Config configures a Client.
type Config struct {
	ProjectKey   string
	ClientID     string
	ClientSecret string
	APIURL       string
	AuthURL      string
	// Scopes is the configured scope list, used for catalog reads.
	Scopes []string

	// RequestsPerSecond <= 0 disables outbound rate limiting.
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration

	// HTTPClient is the base transport client; tests inject httptest clients.
	HTTPClient *http.Client
}

// Client talks to one platform project.
type Client struct {
	apiURL     string
	projectKey string

	clients map[Scope]*http.Client
	limiter *rate.Limiter

	tracer   trace.Tracer
	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

// New builds a Client with one token source per scope set.
func New(cfg Config) (*Client, error) {
	if cfg.ProjectKey == "" || cfg.APIURL == "" || cfg.AuthURL == "" {
		return nil, fmt.Errorf("platform: project key, api url and auth url are required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	base := cfg.HTTPClient
	if base == nil {
		base = &http.Client{Timeout: cfg.Timeout}
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		projectKey: cfg.ProjectKey,
		clients:    make(map[Scope]*http.Client, 3),
		limiter:    rate.NewLimiter(limit, burst),
		tracer:     otel.Tracer(instrumentationName),
	}

	tokenURL := strings.TrimRight(cfg.AuthURL, "/") + "/oauth/token"
	scopeSets := map[Scope][]string{
		ScopeDefault:      cfg.Scopes,
		ScopeShoppingList: qualify(cfg.ProjectKey, "manage_shopping_lists", "view_products", "manage_orders"),
		ScopeOrder:        qualify(cfg.ProjectKey, "manage_orders", "view_products", "manage_shopping_lists"),
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	for scope, scopes := range scopeSets {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		hc := cc.Client(ctx)
		hc.Timeout = cfg.Timeout
		c.clients[scope] = hc
	}

	meter := otel.Meter(instrumentationName)
	var err error
	c.requests, err = meter.Int64Counter("platform.requests",
		metric.WithDescription("Requests sent to the commerce platform"))
	if err != nil {
		return nil, fmt.Errorf("platform: request counter: %w", err)
	}
	c.latency, err = meter.Float64Histogram("platform.request.duration",
		metric.WithDescription("Commerce platform request latency"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("platform: latency histogram: %w", err)
	}
	return c, nil
}

func qualify(projectKey string, scopes ...string) []string {
	out := make([]string, len(scopes))
	for i, s := range scopes {
		out[i] = s + ":" + projectKey
	}
	return out
}

// ProjectKey returns the project this client is bound to.
func (c *Client) ProjectKey() string { return c.projectKey }

func (c *Client) do(ctx context.Context, scope Scope, method, resource, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	ctx, span := c.tracer.Start(ctx, "platform "+method+" "+resource,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("platform.resource", resource),
			attribute.String("platform.scope", scope.String()),
			attribute.String("http.request.method", method),
		))
	defer span.End()

	start := time.Now()
	status, err := c.roundTrip(ctx, scope, method, path, query, body, out)

	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("resource", resource),
		attribute.Int("status", status),
	)
	c.requests.Add(ctx, 1, attrs)
	c.latency.Record(ctx, time.Since(start).Seconds(), attrs)

	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, scope Scope, method, path string, query url.Values, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	u := c.apiURL + "/" + c.projectKey + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.clients[scope].Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		perr := &Error{StatusCode: resp.StatusCode}
		if derr := json.NewDecoder(resp.Body).Decode(perr); derr != nil || perr.Message == "" {
			perr.Message = http.StatusText(resp.StatusCode)
		}
		perr.StatusCode = resp.StatusCode
		return resp.StatusCode, perr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func versionQuery(version int64) url.Values {
	return url.Values{"version": {strconv.FormatInt(version, 10)}}
}
