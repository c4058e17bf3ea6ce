// Package geo resolves geographic coordinates to country names through an
// external reverse-geocoding service. It exists so a shared location can be
// turned into a "set input currency by country" command.
package geo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultAPIBase is the free client-side reverse-geocoding endpoint.
const DefaultAPIBase = "https://api.bigdatacloud.net"

// maxResponseBytes caps geocoder response reads.
const maxResponseBytes = 1 << 20

// Geocoder turns a coordinate pair into an English country name.
type Geocoder interface {
	CountryName(ctx context.Context, lat, lon float64) (string, error)
}

// HTTPGeocoder is the HTTP implementation of Geocoder.
type HTTPGeocoder struct {
	http    *http.Client
	apiBase string
}

// NewHTTPGeocoder constructs an HTTPGeocoder. apiBase "" selects the
// default endpoint; timeout bounds each lookup.
func NewHTTPGeocoder(apiBase string, timeout time.Duration) *HTTPGeocoder {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGeocoder{
		http:    &http.Client{Timeout: timeout},
		apiBase: apiBase,
	}
}

// CountryName resolves lat/lon to an English country name, or an error when
// the service is unreachable or the point is not inside any country.
func (g *HTTPGeocoder) CountryName(ctx context.Context, lat, lon float64) (string, error) {
	url := fmt.Sprintf("%s/data/reverse-geocode-client?latitude=%f&longitude=%f&localityLanguage=en",
		g.apiBase, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("reverse geocode: read response: %w", err)
	}

	name := gjson.GetBytes(body, "countryName").String()
	if name == "" {
		return "", fmt.Errorf("reverse geocode: no country at %f,%f", lat, lon)
	}
	return name, nil
}
