package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/weather"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		location string
		expected weather.Coordinates
		wantErr  bool
	}{
		{name: "valid", location: "-73.98,40.75", expected: weather.Coordinates{Lng: -73.98, Lat: 40.75}},
		{name: "spaces", location: " 12.5 , 41.9 ", expected: weather.Coordinates{Lng: 12.5, Lat: 41.9}},
		{name: "single_token", location: "40.75", wantErr: true},
		{name: "three_tokens", location: "1,2,3", wantErr: true},
		{name: "not_numeric", location: "Rome,Italy", wantErr: true},
		{name: "empty", location: "", wantErr: true},
		{name: "nan", location: "NaN,1", wantErr: true},
		{name: "infinity", location: "1,Inf", wantErr: true},
		{name: "overflow", location: "1e999,2", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := weather.ParseCoordinates(testCase.location)
			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidCoordinates)
				assert.ErrorIs(t, err, domain.ErrInvalidPrecondition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestClient_Current(t *testing.T) {
	var query map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"lat":   r.URL.Query().Get("lat"),
			"lon":   r.URL.Query().Get("lon"),
			"appid": r.URL.Query().Get("appid"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"main":{"temp":293.1}}`))
	}))
	defer server.Close()

	logger, _ := logtest.NewNullLogger()
	client := weather.New(server.URL+"/data/2.5/weather", "secret", 0, logger)

	payload, err := client.Current(context.Background(), weather.Coordinates{Lng: -73.98, Lat: 40.75})
	require.NoError(t, err)
	assert.JSONEq(t, `{"main":{"temp":293.1}}`, string(payload))
	assert.Equal(t, map[string]string{"lat": "40.75", "lon": "-73.98", "appid": "secret"}, query)
}

func TestClient_CurrentFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "error_status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
			},
		},
		{
			name: "invalid_json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(testCase.handler)
			defer server.Close()

			logger, _ := logtest.NewNullLogger()
			client := weather.New(server.URL, "", 0, logger)
			_, err := client.Current(context.Background(), weather.Coordinates{Lng: 1, Lat: 2})
			assert.Error(t, err)
		})
	}

	logger, _ := logtest.NewNullLogger()
	client := weather.New("http://127.0.0.1:1", "", 0, logger)
	_, err := client.Current(context.Background(), weather.Coordinates{})
	assert.Error(t, err)
}
