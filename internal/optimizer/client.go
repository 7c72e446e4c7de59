// Package optimizer wraps the third-party vehicle-routing HTTP API that
// orders a set of stops for a vehicle.
package optimizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Address locates a stop for the optimizer.
type Address struct {
	LocationID string  `json:"location_id"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

// Vehicle is the collecting truck, starting from the depot.
type Vehicle struct {
	VehicleID    string  `json:"vehicle_id"`
	StartAddress Address `json:"start_address"`
}

// Service is a single stop to be visited.
type Service struct {
	ID      string  `json:"id"`
	Name    string  `json:"name,omitempty"`
	Address Address `json:"address"`
}

// Request is the optimization problem sent to the external API.
type Request struct {
	Vehicles []Vehicle `json:"vehicles"`
	Services []Service `json:"services"`
}

// Activity is one step of a solved route. Type is "start", "service" or "end";
// ID is set for service activities only.
type Activity struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

// SolvedRoute is one vehicle's ordered activity list.
type SolvedRoute struct {
	VehicleID  string     `json:"vehicle_id"`
	Activities []Activity `json:"activities"`
}

// Solution holds the solved routes.
type Solution struct {
	Routes []SolvedRoute `json:"routes"`
}

type solveResponse struct {
	Solution Solution `json:"solution"`
}

// ServiceOrder returns the service activity ids across all routes,
// preserving the externally computed visit order.
func (s *Solution) ServiceOrder() []string {
	var order []string
	for _, r := range s.Routes {
		for _, a := range r.Activities {
			if a.Type == "service" && a.ID != "" {
				order = append(order, a.ID)
			}
		}
	}
	return order
}

// Client calls the route-optimization API. Zero value is not usable;
// construct with NewClient or NewClientFromEnv.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

const defaultBaseURL = "https://graphhopper.com/api/1/vrp"

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{APIKey: apiKey, BaseURL: baseURL, HTTP: http.DefaultClient}
}

// NewClientFromEnv builds a client from OPTIMIZER_API_KEY / OPTIMIZER_URL.
// Returns nil when no API key is configured; callers fall back to the
// naive address ordering.
func NewClientFromEnv() *Client {
	key := os.Getenv("OPTIMIZER_API_KEY")
	if key == "" {
		return nil
	}
	return NewClient(key, os.Getenv("OPTIMIZER_URL"))
}

// Solve posts the optimization problem and returns the solution. The call is
// synchronous and a single failure is surfaced to the caller unchanged.
func (c *Client) Solve(req Request) (*Solution, error) {
	if len(req.Services) == 0 {
		return nil, errors.New("optimizer: no services to order")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s?key=%s", c.BaseURL, c.APIKey)
	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("optimizer: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var solved solveResponse
	if err := json.Unmarshal(body, &solved); err != nil {
		return nil, fmt.Errorf("optimizer: decoding response: %w", err)
	}
	return &solved.Solution, nil
}
