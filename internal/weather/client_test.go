package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchCityTemperature(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"main": {"temp": 21.5, "humidity": 60}}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, APIKey: "test-key", HTTPClient: ts.Client()}

	temp, err := c.FetchCityTemperature(context.Background(), "Berlin")
	assert.NoError(t, err)
	assert.Equal(t, 21.5, temp)
}

func TestFetchCityTemperatureUnknownCity(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, APIKey: "test-key", HTTPClient: ts.Client()}

	_, err := c.FetchCityTemperature(context.Background(), "Nowheresville")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchCityTemperatureMissingField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"main": {"humidity": 60}}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, APIKey: "test-key", HTTPClient: ts.Client()}

	_, err := c.FetchCityTemperature(context.Background(), "Berlin")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchCityTemperatureBadBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, APIKey: "test-key", HTTPClient: ts.Client()}

	_, err := c.FetchCityTemperature(context.Background(), "Berlin")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchCityTemperatureServerDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	c := &Client{BaseURL: ts.URL, APIKey: "test-key"}

	_, err := c.FetchCityTemperature(context.Background(), "Berlin")
	assert.ErrorIs(t, err, ErrUnavailable)
}
