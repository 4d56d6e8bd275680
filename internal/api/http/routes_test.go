package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/polar-plant-data/internal/plants"
)

func newTestApp(source SampleSource) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, source, time.Hour)
	return app
}

func doGet(t *testing.T, app *fiber.App, target string, out any) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("decoding %s: %v (body %q)", target, err, body)
		}
	}
	return resp
}

// TestSamplesEndpoint verifies the full dataset is served in canonical order with angles.
func TestSamplesEndpoint(t *testing.T) {
	app := newTestApp(plants.NewPlantDataProvider())

	var body struct {
		Samples []sampleResponse `json:"samples"`
	}
	resp := doGet(t, app, "/api/v1/samples", &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if got := resp.Header.Get(fiber.HeaderCacheControl); got != "public, max-age=3600" {
		t.Fatalf("unexpected Cache-Control %q", got)
	}

	if len(body.Samples) != 8 {
		t.Fatalf("expected 8 samples, got %d", len(body.Samples))
	}
	for i, s := range body.Samples {
		if s.Angle != float64(i)*45 {
			t.Fatalf("sample %s: expected angle %v, got %v", s.Direction, float64(i)*45, s.Angle)
		}
	}
	want := sampleResponse{Direction: plants.SouthEast, Angle: 135, TreeCount: 90, FlowerCount: 40, WeedCount: 70}
	if body.Samples[3] != want {
		t.Fatalf("index 3: expected %+v, got %+v", want, body.Samples[3])
	}
}

func TestSampleByDirection(t *testing.T) {
	app := newTestApp(plants.NewPlantDataProvider())

	var got sampleResponse
	resp := doGet(t, app, "/api/v1/samples/southeast", &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if got.Direction != plants.SouthEast || got.TreeCount != 90 || got.FlowerCount != 40 || got.WeedCount != 70 {
		t.Fatalf("unexpected sample: %+v", got)
	}

	for _, target := range []string{"/api/v1/samples/Up", "/api/v1/samples/north-east"} {
		var errBody struct {
			Error   bool   `json:"error"`
			Message string `json:"message"`
		}
		resp = doGet(t, app, target, &errBody)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected status %d, got %d", target, http.StatusBadRequest, resp.StatusCode)
		}
		if !errBody.Error || errBody.Message == "" {
			t.Fatalf("%s: expected error body, got %+v", target, errBody)
		}
	}
}

func TestSeriesEndpoint(t *testing.T) {
	app := newTestApp(plants.NewPlantDataProvider())

	var body struct {
		Category   plants.Category    `json:"category"`
		Directions []plants.Direction `json:"directions"`
		Values     []int              `json:"values"`
	}
	resp := doGet(t, app, "/api/v1/series/flower", &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if body.Category != plants.CategoryFlower {
		t.Fatalf("expected Flower, got %q", body.Category)
	}
	if want := []int{42, 40, 47, 40, 27, 45, 40, 38}; !reflect.DeepEqual(body.Values, want) {
		t.Fatalf("expected %v, got %v", want, body.Values)
	}
	if !reflect.DeepEqual(body.Directions, plants.Directions()) {
		t.Fatalf("unexpected directions %v", body.Directions)
	}

	resp = doGet(t, app, "/api/v1/series/cactus", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestDirectionsEndpoint(t *testing.T) {
	app := newTestApp(plants.NewPlantDataProvider())

	var body struct {
		Directions []directionResponse `json:"directions"`
	}
	doGet(t, app, "/api/v1/directions", &body)
	if len(body.Directions) != 8 {
		t.Fatalf("expected 8 directions, got %d", len(body.Directions))
	}
	if last := body.Directions[7]; last.Direction != plants.NorthWest || last.Angle != 315 {
		t.Fatalf("unexpected last direction %+v", last)
	}
}

type unavailableSource struct{}

func (unavailableSource) Samples() []plants.DirectionSample { return nil }

func (unavailableSource) Sample(plants.Direction) (plants.DirectionSample, error) {
	return plants.DirectionSample{}, plants.ErrDataUnavailable
}

func (unavailableSource) Series(plants.Category) ([]int, error) {
	return nil, errors.New("boom")
}

func TestErrorMapping(t *testing.T) {
	app := newTestApp(unavailableSource{})

	resp := doGet(t, app, "/api/v1/samples/North", nil)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, resp.StatusCode)
	}

	resp = doGet(t, app, "/api/v1/series/tree", nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
}
