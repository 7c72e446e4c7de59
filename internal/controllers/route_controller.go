package controllers

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taka_track/internal/config"
	"taka_track/internal/models"
	"taka_track/internal/optimizer"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
)

// NewOptimizerClient builds the outbound optimizer client per request.
// Overridable in tests; returns nil when no API key is configured.
var NewOptimizerClient = optimizer.NewClientFromEnv

// GetDriverRoute returns the pending pickups in visiting order for the
// authenticated driver, plus a GeoJSON LineString of the ordered stops.
// Order is alphabetical by address unless an optimizer is configured, in
// which case the external visit order is used.
func GetDriverRoute(c *gin.Context) {
	driverID := uint(c.MustGet("user_id").(float64))

	var pending []models.Pickup
	if err := config.DB.Where("status = ?", models.PickupPending).Find(&pending).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching pending pickups: " + err.Error()})
		return
	}

	orderedBy := "address"
	if client := NewOptimizerClient(); client != nil && len(pending) > 0 {
		optimized, err := orderByOptimizer(client, driverID, pending)
		if err != nil {
			logrus.WithError(err).Error("GetDriverRoute: optimizer call failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		pending = optimized
		orderedBy = "optimizer"
	} else {
		sort.Slice(pending, func(i, j int) bool {
			return pending[i].Address < pending[j].Address
		})
	}

	line, err := routeLine(pending)
	if err != nil {
		logrus.WithError(err).Warn("GetDriverRoute: could not encode route geometry")
		line = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"pickups":    pending,
		"count":      len(pending),
		"ordered_by": orderedBy,
		"geometry":   line,
	})
}

// serviceID is the opaque identifier sent to the optimizer for one pickup.
func serviceID(p models.Pickup) string {
	return "pickup-" + strconv.FormatUint(uint64(p.ID), 10)
}

// orderByOptimizer sends the pending stops to the external optimizer and
// re-maps the returned visit order onto the local records. External order is
// preserved; activities that match no local pickup are dropped.
func orderByOptimizer(client *optimizer.Client, driverID uint, pending []models.Pickup) ([]models.Pickup, error) {
	req := optimizer.Request{
		Vehicles: []optimizer.Vehicle{
			{
				VehicleID: vehicleIDForDriver(driverID),
				StartAddress: optimizer.Address{
					LocationID: "depot",
					Lat:        envFloat("DEPOT_LAT", 0),
					Lon:        envFloat("DEPOT_LNG", 0),
				},
			},
		},
	}
	for _, p := range pending {
		req.Services = append(req.Services, optimizer.Service{
			ID:   serviceID(p),
			Name: p.WasteType + " at " + p.Address,
			Address: optimizer.Address{
				LocationID: serviceID(p),
				Lat:        p.Lat,
				Lon:        p.Lng,
			},
		})
	}

	solution, err := client.Solve(req)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Pickup, len(pending))
	for _, p := range pending {
		byID[serviceID(p)] = p
	}

	var ordered []models.Pickup
	for _, id := range solution.ServiceOrder() {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// vehicleIDForDriver uses the driver's in-service truck registration when one
// exists, otherwise a synthetic id.
func vehicleIDForDriver(driverID uint) string {
	var truck models.Truck
	err := config.DB.
		Where("driver_id = ? AND in_service = ?", driverID, true).
		First(&truck).Error
	if err != nil {
		return fmt.Sprintf("truck-%d", driverID)
	}
	return truck.RegistrationNo
}

// routeLine encodes the ordered stop coordinates as a GeoJSON LineString.
// Fewer than two stops yields no geometry.
func routeLine(pickups []models.Pickup) (string, error) {
	if len(pickups) < 2 {
		return "", nil
	}

	coords := make([]geom.Coord, 0, len(pickups))
	for _, p := range pickups {
		coords = append(coords, geom.Coord{p.Lng, p.Lat})
	}

	line := geom.NewLineString(geom.XY)
	if _, err := line.SetCoords(coords); err != nil {
		return "", err
	}

	b, err := gjson.Marshal(line)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func envFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultValue
	}
	return v
}
