package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const userHeaderName = "X-Sharer-User-Id"

var forwardedHeaders = []string{userHeaderName, requestIDHeader}

// Forwarder relays validated requests to the backend and copies the answer back verbatim.
type Forwarder struct {
	client *http.Client
	base   *url.URL
	logger *slog.Logger
}

func NewForwarder(backendURL string, timeout time.Duration, logger *slog.Logger) (*Forwarder, error) {
	base, err := url.Parse(backendURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", backendURL)
	}

	return &Forwarder{
		client: &http.Client{Timeout: timeout},
		base:   base,
		logger: logger,
	}, nil
}

func (f *Forwarder) Forward(c *gin.Context, body []byte) {
	resp, err := f.do(c.Request.Context(), c.Request, body)
	if err != nil {
		f.logger.ErrorContext(c.Request.Context(), "backend request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "BadGateway", "description": "backend unavailable"})
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	c.DataFromReader(resp.StatusCode, resp.ContentLength, contentType, resp.Body, nil)
}

func (f *Forwarder) do(ctx context.Context, in *http.Request, body []byte) (*http.Response, error) {
	target := *f.base
	target.Path = strings.TrimRight(f.base.Path, "/") + in.URL.Path
	target.RawQuery = in.URL.RawQuery

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, in.Method, target.String(), reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range forwardedHeaders {
		if v := in.Header.Get(h); v != "" {
			req.Header.Set(h, v)
		}
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return f.client.Do(req)
}
