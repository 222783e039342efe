package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org"

// ErrUnavailable — город не распознан или погодный сервис не ответил.
// Любой неуспех одного-единственного запроса сводится к этой ошибке,
// повторных попыток нет.
var ErrUnavailable = errors.New("weather: city temperature unavailable")

// Provider отдаёт сегодняшнюю температуру в городе (°C).
type Provider interface {
	FetchCityTemperature(ctx context.Context, city string) (float64, error)
}

// Client — клиент OpenWeather API.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{APIKey: apiKey}
}

type weatherResponse struct {
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

func (c *Client) FetchCityTemperature(ctx context.Context, city string) (float64, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.APIKey)
	params.Set("units", "metric")

	reqURL := fmt.Sprintf("%s/data/2.5/weather?%s", base, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create openweather request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, ErrUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, ErrUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		return 0, ErrUnavailable
	}

	var parsed weatherResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, ErrUnavailable
	}
	if parsed.Main.Temp == nil {
		return 0, ErrUnavailable
	}

	return *parsed.Main.Temp, nil
}
