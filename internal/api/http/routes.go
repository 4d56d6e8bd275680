package httpapi

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/polar-plant-data/internal/plants"
)

var validate = validator.New()

// SampleSource is the read side of the plant dataset the routes serve.
type SampleSource interface {
	Samples() []plants.DirectionSample
	Sample(d plants.Direction) (plants.DirectionSample, error)
	Series(c plants.Category) ([]int, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
// cacheMaxAge is advertised on dataset responses; zero disables caching headers.
func RegisterRoutes(app *fiber.App, source SampleSource, cacheMaxAge time.Duration) {
	v1 := app.Group("/api/v1", cacheControl(cacheMaxAge))

	v1.Get("/samples", func(c *fiber.Ctx) error {
		samples := source.Samples()
		out := make([]sampleResponse, 0, len(samples))
		for _, s := range samples {
			out = append(out, toSampleResponse(s))
		}
		return c.JSON(fiber.Map{
			"samples": out,
		})
	})

	v1.Get("/samples/:direction", func(c *fiber.Ctx) error {
		var req directionParam
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		sample, err := source.Sample(req.Direction)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(toSampleResponse(sample))
	})

	v1.Get("/series/:category", func(c *fiber.Ctx) error {
		category, err := plants.ParseCategory(c.Params("category"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		values, err := source.Series(category)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(fiber.Map{
			"category":   category,
			"directions": plants.Directions(),
			"values":     values,
		})
	})

	v1.Get("/directions", func(c *fiber.Ctx) error {
		dirs := plants.Directions()
		out := make([]directionResponse, 0, len(dirs))
		for _, d := range dirs {
			out = append(out, directionResponse{Direction: d, Angle: d.Angle()})
		}
		return c.JSON(fiber.Map{
			"directions": out,
		})
	})
}

// ErrorHandler renders every handler error as a JSON body with the matching status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, plants.ErrUnknownDirection), errors.Is(err, plants.ErrUnknownCategory):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, plants.ErrDataUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, "plant data unavailable")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read plant data")
	}
}

func cacheControl(maxAge time.Duration) fiber.Handler {
	value := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	return func(c *fiber.Ctx) error {
		if maxAge > 0 {
			c.Set(fiber.HeaderCacheControl, value)
		}
		return c.Next()
	}
}

// sampleResponse is a DirectionSample with its polar angle attached.
type sampleResponse struct {
	Direction   plants.Direction `json:"direction"`
	Angle       float64          `json:"angle"`
	TreeCount   int              `json:"treeCount"`
	FlowerCount int              `json:"flowerCount"`
	WeedCount   int              `json:"weedCount"`
}

func toSampleResponse(s plants.DirectionSample) sampleResponse {
	return sampleResponse{
		Direction:   s.Direction,
		Angle:       s.Direction.Angle(),
		TreeCount:   s.TreeCount,
		FlowerCount: s.FlowerCount,
		WeedCount:   s.WeedCount,
	}
}

type directionResponse struct {
	Direction plants.Direction `json:"direction"`
	Angle     float64          `json:"angle"`
}

// directionParam holds the path parameter identifying a direction.
type directionParam struct {
	Raw       string `validate:"required,alpha,max=16"`
	Direction plants.Direction
}

func (d *directionParam) bind(c *fiber.Ctx) error {
	d.Raw = c.Params("direction")
	if err := validate.Struct(d); err != nil {
		return err
	}

	dir, err := plants.ParseDirection(d.Raw)
	if err != nil {
		return err
	}
	d.Direction = dir
	return nil
}
