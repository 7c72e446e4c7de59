package optimizer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRequest() Request {
	return Request{
		Vehicles: []Vehicle{
			{VehicleID: "truck-1", StartAddress: Address{LocationID: "depot", Lat: -1.28, Lon: 36.82}},
		},
		Services: []Service{
			{ID: "pickup-1", Address: Address{LocationID: "pickup-1", Lat: -1.29, Lon: 36.80}},
			{ID: "pickup-2", Address: Address{LocationID: "pickup-2", Lat: -1.30, Lon: 36.79}},
		},
	}
}

func TestSolve(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got Request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Len(t, got.Services, 2)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"solution": map[string]interface{}{
				"routes": []map[string]interface{}{
					{
						"vehicle_id": "truck-1",
						"activities": []map[string]string{
							{"type": "start"},
							{"type": "service", "id": "pickup-2"},
							{"type": "service", "id": "pickup-1"},
							{"type": "end"},
						},
					},
				},
			},
		})
	}))
	defer stub.Close()

	client := NewClient("secret-key", stub.URL)
	solution, err := client.Solve(sampleRequest())
	assert.NoError(t, err)
	assert.Equal(t, []string{"pickup-2", "pickup-1"}, solution.ServiceOrder())
}

func TestSolveErrorStatus(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer stub.Close()

	client := NewClient("bad-key", stub.URL)
	_, err := client.Solve(sampleRequest())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSolveNoServices(t *testing.T) {
	client := NewClient("key", "http://unused.invalid")
	_, err := client.Solve(Request{})
	assert.Error(t, err)
}

func TestServiceOrderSpansRoutes(t *testing.T) {
	s := Solution{
		Routes: []SolvedRoute{
			{Activities: []Activity{{Type: "start"}, {Type: "service", ID: "a"}, {Type: "end"}}},
			{Activities: []Activity{{Type: "start"}, {Type: "service", ID: "b"}, {Type: "service", ID: "c"}}},
		},
	}
	assert.Equal(t, []string{"a", "b", "c"}, s.ServiceOrder())
}
