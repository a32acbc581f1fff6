// Package amap implements the place-search and driving-route providers on
// top of the Amap web service APIs.
package amap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"wayfare/config"
	"wayfare/internal/domain/entity"

	"github.com/pkg/errors"
)

// statusOK is the provider's success flag; anything else is a reported
// failure even when the HTTP layer succeeded.
const statusOK = "1"

// Client is the shared HTTP transport for all Amap endpoints.
type Client struct {
	httpClient *http.Client
	key        string
	baseURL    string
	city       string
	logger     *slog.Logger
}

// NewClient builds the shared Amap transport from provider configuration.
func NewClient(cfg *config.AmapConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		key:        cfg.Key,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		city:       cfg.City,
		logger:     logger,
	}
}

// getJSON issues a GET against an Amap endpoint and decodes the JSON body
// into out. Decode failures come back as *DecodeError so callers can tell
// a broken payload apart from "no results".
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	query.Set("key", c.key)
	query.Set("output", "JSON")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "build amap request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "amap request %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("amap %s: bad status %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Endpoint: path, cause: err}
	}

	return nil
}

// DecodeError marks a payload whose shape did not match the declared
// decoder. It is distinguishable from an empty-but-valid result.
type DecodeError struct {
	Endpoint string
	cause    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("amap %s: unexpected payload: %v", e.Endpoint, e.cause)
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}

// ProviderError marks a request the provider itself rejected (status flag
// not "1").
type ProviderError struct {
	Endpoint string
	Info     string
	InfoCode string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("amap %s: provider error %s (%s)", e.Endpoint, e.Info, e.InfoCode)
}

// flexString decodes provider fields that arrive either as a string or as
// an empty array (Amap encodes "no value" both ways, notably biz_ext
// rating). Any other shape fails loudly instead of defaulting silently.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("empty JSON value")
	}

	switch trimmed[0] {
	case '"':
		var v string
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return errors.Wrap(err, "decode string field")
		}
		*s = flexString(v)

		return nil
	case '[':
		var v []any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return errors.Wrap(err, "decode array field")
		}
		if len(v) != 0 {
			return errors.Errorf("unexpected non-empty array value %s", trimmed)
		}
		*s = ""

		return nil
	case 'n':
		*s = ""

		return nil
	default:
		return errors.Errorf("unexpected JSON shape %s", trimmed)
	}
}

// parseLocation decodes the provider's "longitude,latitude" field.
func parseLocation(raw string) (entity.GeoPoint, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return entity.GeoPoint{}, errors.Errorf("malformed location %q", raw)
	}

	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrapf(err, "malformed longitude %q", parts[0])
	}

	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrapf(err, "malformed latitude %q", parts[1])
	}

	return entity.GeoPoint{lon, lat}, nil
}

// formatCoordinate renders a coordinate the way the routing endpoint
// expects it: "longitude,latitude" at six decimal places.
func formatCoordinate(p entity.GeoPoint) string {
	return fmt.Sprintf("%.6f,%.6f", p.Lon(), p.Lat())
}
