// Package weather talks to the third-party current-weather API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"restaurant-directory/internal/domain"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DefaultTimeout = 5 * time.Second

type Coordinates struct {
	Lng float64
	Lat float64
}

// ParseCoordinates reads a "lng,lat" location string.
func ParseCoordinates(location string) (Coordinates, error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return Coordinates{}, domain.ErrInvalidCoordinates
	}
	lng, err := parseCoordinate(parts[0])
	if err != nil {
		return Coordinates{}, err
	}
	lat, err := parseCoordinate(parts[1])
	if err != nil {
		return Coordinates{}, err
	}
	return Coordinates{Lng: lng, Lat: lat}, nil
}

// parseCoordinate rejects NaN and infinities, which ParseFloat accepts.
func parseCoordinate(token string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.ErrInvalidCoordinates
	}
	return v, nil
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     logrus.FieldLogger
}

func New(baseURL, apiKey string, timeout time.Duration, logger logrus.FieldLogger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// Current returns the provider payload untouched.
func (c *Client) Current(ctx context.Context, at Coordinates) (json.RawMessage, error) {
	endpoint, err := c.endpoint(at)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create GET request")
	}
	req.Header.Add("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send GET request")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	if res.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"status": res.StatusCode,
			"lng":    at.Lng,
			"lat":    at.Lat,
		}).Warn("weather provider returned an error")
		return nil, errors.Errorf("weather API failed with status %d: %s", res.StatusCode, string(body))
	}

	if !json.Valid(body) {
		return nil, errors.Errorf("weather API returned invalid JSON. Got: %v", string(body))
	}
	return json.RawMessage(body), nil
}

func (c *Client) endpoint(at Coordinates) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", errors.Wrap(err, "parse weather API url")
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Lng, 'f', -1, 64))
	if c.apiKey != "" {
		q.Set("appid", c.apiKey)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.Lng, c.Lat)
}
