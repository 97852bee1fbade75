// Package advisory wraps the JalMitra advisory backend for modular use.
//
// It provides typed access to the location-hierarchy, groundwater-balance,
// water-requirement, crop-recommendation and sowing endpoints. Failures are
// classified into connectivity errors (backend unreachable, including
// timeouts) and remote errors (backend reachable but returned an error status
// or an unparseable payload) so the conversation engine can map each class to
// the right localized reply.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the fixed timeout applied to every backend call.
const DefaultTimeout = 30 * time.Second

// Error kinds returned by the client. Callers classify with errors.Is.
var (
	// ErrConnectivity indicates the backend could not be reached; a request
	// timeout counts as connectivity, not as a fatal error.
	ErrConnectivity = errors.New("advisory backend unreachable")
	// ErrRemote indicates the backend responded with an error status or an
	// unparseable payload.
	ErrRemote = errors.New("advisory backend error")
	// ErrCropNotFound indicates the backend does not know the requested crop.
	ErrCropNotFound = errors.New("crop not found")
)

// Opts holds configuration options for the advisory client.
type Opts struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Option defines a configuration option for the advisory client.
type Option func(*Opts)

// WithBaseURL sets the backend base URL (required).
func WithBaseURL(baseURL string) Option {
	return func(o *Opts) { o.BaseURL = baseURL }
}

// WithTimeout overrides the fixed request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Opts) { o.Timeout = d }
}

// WithHTTPClient injects a custom HTTP client (used in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Opts) { o.HTTPClient = hc }
}

// Client is a typed facade over the advisory backend's HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new advisory client, applying any provided options.
func NewClient(opts ...Option) (*Client, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("advisory backend base URL not set")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	slog.Debug("Advisory client created", "base_url_set", cfg.BaseURL != "", "timeout", timeout)
	return &Client{baseURL: strings.TrimRight(cfg.BaseURL, "/"), http: hc}, nil
}

// Districts fetches the district list for the given area type ("U" or "R").
func (c *Client) Districts(ctx context.Context, area string) ([]Location, error) {
	query := url.Values{"area": {area}}
	var out []Location
	if err := c.getJSON(ctx, "/levels/districts", query, &out); err != nil {
		return nil, err
	}
	slog.Debug("Advisory Districts fetched", "area", area, "count", len(out))
	return out, nil
}

// Talukas fetches the taluka list for a district.
func (c *Client) Talukas(ctx context.Context, area, districtCode string) ([]Location, error) {
	query := url.Values{"area": {area}, "districtCode": {districtCode}}
	var out []Location
	if err := c.getJSON(ctx, "/levels/talukas", query, &out); err != nil {
		return nil, err
	}
	slog.Debug("Advisory Talukas fetched", "district", districtCode, "count", len(out))
	return out, nil
}

// Villages fetches the village list for a taluka.
func (c *Client) Villages(ctx context.Context, area, districtCode, talukaCode string) ([]Village, error) {
	query := url.Values{"area": {area}, "districtCode": {districtCode}, "talukaCode": {talukaCode}}
	var out []Village
	if err := c.getJSON(ctx, "/levels/villages", query, &out); err != nil {
		return nil, err
	}
	slog.Debug("Advisory Villages fetched", "taluka", talukaCode, "count", len(out))
	return out, nil
}

// Surveys fetches the survey plot list for a village. The villageCode here is
// the GIS code selected from the village listing.
func (c *Client) Surveys(ctx context.Context, area, districtCode, talukaCode, villageCode string) ([]PlotRef, error) {
	query := url.Values{
		"area":         {area},
		"districtCode": {districtCode},
		"talukaCode":   {talukaCode},
		"villageCode":  {villageCode},
	}
	var out []PlotRef
	if err := c.getJSON(ctx, "/levels/surveys", query, &out); err != nil {
		return nil, err
	}
	slog.Debug("Advisory Surveys fetched", "village", villageCode, "count", len(out))
	return out, nil
}

// PlotInfo fetches coordinates and registered owners for one survey plot.
func (c *Client) PlotInfo(ctx context.Context, area, districtCode, talukaCode, villageGISCode, plotNo string) (*PlotInfo, error) {
	query := url.Values{
		"area":           {area},
		"districtCode":   {districtCode},
		"talukaCode":     {talukaCode},
		"villageGisCode": {villageGISCode},
		"plotNo":         {plotNo},
	}
	var out PlotInfo
	if err := c.getJSON(ctx, "/levels/plot-info", query, &out); err != nil {
		return nil, err
	}
	slog.Debug("Advisory PlotInfo fetched", "plot", plotNo, "owners", len(out.Owners))
	return &out, nil
}

// GroundwaterBalance computes the groundwater balance for a farm. The payload
// shape has drifted across backend versions, so the numeric figure is probed
// from an ordered list of candidate field names; a payload with no
// recognizable field yields a nil Value, not an error.
func (c *Client) GroundwaterBalance(ctx context.Context, lat, lon, farmAreaAres float64) (*BalanceResult, error) {
	payload := map[string]any{
		"latitude":       lat,
		"longitude":      lon,
		"farm_area_ares": farmAreaAres,
	}
	body, err := c.postJSON(ctx, "/balance/gw-balance", payload)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding balance payload: %v", ErrRemote, err)
	}

	result := &BalanceResult{}
	switch v := raw.(type) {
	case json.Number:
		if f, ok := coerceFloat(v); ok {
			result.Value = &f
			result.Raw = map[string]float64{"balance": f}
		}
	case map[string]any:
		result.Value = extractNumeric(v, balanceFieldCandidates)
		result.Raw = make(map[string]float64, len(v))
		for name, field := range v {
			if f, ok := coerceFloat(field); ok {
				result.Raw[name] = f
			}
		}
	default:
		return nil, fmt.Errorf("%w: unexpected balance payload type %T", ErrRemote, raw)
	}
	slog.Debug("Advisory GroundwaterBalance fetched", "value_known", result.Value != nil)
	return result, nil
}

// WaterRequirement computes the seasonal water requirement for a crop on the
// given farm.
func (c *Client) WaterRequirement(ctx context.Context, lat, lon float64, crop string, farmAreaAres float64) (*WaterRequirement, error) {
	payload := map[string]any{
		"latitude":  lat,
		"longitude": lon,
		"crop":      crop,
		"farm_area": farmAreaAres,
	}
	body, err := c.postJSON(ctx, "/crop/water-requirement", payload)
	if err != nil {
		return nil, err
	}
	var out WaterRequirement
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decoding water requirement: %v", ErrRemote, err)
	}
	slog.Debug("Advisory WaterRequirement fetched", "crop", crop, "required_known", out.WaterRequiredLitres != nil)
	return &out, nil
}

// TopCrops fetches the recommended crops for a location.
func (c *Client) TopCrops(ctx context.Context, lat, lon float64) (*TopCrops, error) {
	query := url.Values{
		"latitude":  {formatCoord(lat)},
		"longitude": {formatCoord(lon)},
	}
	var out TopCrops
	if err := c.getJSON(ctx, "/crop/top-crops", query, &out); err != nil {
		return nil, err
	}
	slog.Debug("Advisory TopCrops fetched", "count", len(out.Crops))
	return &out, nil
}

// BestSowingDay fetches the sowing advisory for a crop at a location. An
// unknown crop is reported as ErrCropNotFound so the engine can emit the
// dedicated message instead of a generic failure.
func (c *Client) BestSowingDay(ctx context.Context, lat, lon float64, crop string) (*SowingAdvice, error) {
	query := url.Values{
		"lat":  {formatCoord(lat)},
		"lon":  {formatCoord(lon)},
		"crop": {crop},
	}
	status, body, err := c.get(ctx, "/sowing/best-sowing-day", query)
	if err != nil {
		return nil, err
	}

	if status == http.StatusBadRequest {
		var errPayload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errPayload) == nil && strings.Contains(errPayload.Error, "Crop not found") {
			return nil, fmt.Errorf("%w: %s", ErrCropNotFound, crop)
		}
		return nil, fmt.Errorf("%w: %s", ErrRemote, strings.TrimSpace(errPayload.Error))
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRemote, status)
	}

	var out SowingAdvice
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decoding sowing advice: %v", ErrRemote, err)
	}
	slog.Debug("Advisory BestSowingDay fetched", "crop", crop, "has_advice", out.Advice != "")
	return &out, nil
}

// getJSON performs a GET expecting a 200 with a JSON body decoded into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	status, body, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: status %d from %s", ErrRemote, status, path)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", ErrRemote, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: building request: %v", ErrRemote, err)
	}
	return c.do(req)
}

// postJSON performs a POST expecting a 2xx with a JSON body, returned raw.
func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding payload: %v", ErrRemote, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrRemote, err)
	}
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: status %d from %s", ErrRemote, status, path)
	}
	return body, nil
}

// do executes the request. Transport-level failures (DNS, refused connection,
// timeout) are classified as connectivity errors.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("Advisory request failed", "path", req.URL.Path, "error", err)
		return 0, nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: reading response: %v", ErrConnectivity, err)
	}
	return resp.StatusCode, body, nil
}

func formatCoord(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", v), "0"), ".")
}
