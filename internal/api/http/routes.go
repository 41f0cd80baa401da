package httpapi

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	pages := newPages(service)

	app.Use("/static", staticAssets())
	app.Get("/", pages.index)

	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		req, err := parseDashboardQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		d, err := service.Dashboard(c.UserContext(), req)
		if err != nil {
			status := fiber.StatusBadGateway
			if errors.Is(err, weather.ErrInvalidLocation) {
				status = fiber.StatusNotFound
			}
			return c.Status(status).JSON(d)
		}
		return c.JSON(d)
	})

	v1.Get("/cities", func(c *fiber.Ctx) error {
		var q citiesQuery
		q.Unit = c.Query("unit")
		q.Selected = c.Query("selected")
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		unit, err := weather.ParseUnit(q.Unit)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		data, err := service.Cities(c.UserContext())
		if err != nil {
			if errors.Is(err, weather.ErrNoCities) {
				return c.JSON(fiber.Map{"unit": unit, "cities": []weather.CityCard{}})
			}
			return fiber.NewError(fiber.StatusBadGateway, weather.MsgCitiesFailed)
		}

		return c.JSON(fiber.Map{
			"unit":   unit,
			"cities": service.Renderer().Cities(service.CityNames(), data, unit, q.Selected),
		})
	})

	v1.Get("/classify", func(c *fiber.Ctx) error {
		condition := c.Query("condition")
		return c.JSON(fiber.Map{
			"condition": condition,
			"token":     service.Renderer().Classify(condition),
		})
	})
}

// dashboardQuery holds query parameters for the dashboard endpoints.
type dashboardQuery struct {
	Place   string   `validate:"omitempty,max=120"`
	Lat     *float64 `validate:"omitempty,gte=-90,lte=90"`
	Lon     *float64 `validate:"omitempty,gte=-180,lte=180"`
	Unit    string   `validate:"omitempty,oneof=celsius fahrenheit c f"`
	View    string   `validate:"omitempty,oneof=hourly daily"`
	Refresh bool
}

// citiesQuery holds query parameters for the city panel.
type citiesQuery struct {
	Unit     string `validate:"omitempty,oneof=celsius fahrenheit c f"`
	Selected string `validate:"omitempty,max=120"`
}

func parseDashboardQuery(c *fiber.Ctx) (weather.DashboardRequest, error) {
	var q dashboardQuery

	q.Place = strings.TrimSpace(c.Query("q"))
	q.Unit = strings.ToLower(c.Query("unit"))
	q.View = strings.ToLower(c.Query("view"))
	q.Refresh = c.QueryBool("refresh", false)

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if (latStr == "") != (lonStr == "") {
		return weather.DashboardRequest{}, errors.New("lat and lon must be given together")
	}
	if latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return weather.DashboardRequest{}, errors.New("invalid latitude")
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return weather.DashboardRequest{}, errors.New("invalid longitude")
		}
		q.Lat, q.Lon = &lat, &lon
	}

	if err := validate.Struct(q); err != nil {
		return weather.DashboardRequest{}, err
	}

	unit, err := weather.ParseUnit(q.Unit)
	if err != nil {
		return weather.DashboardRequest{}, err
	}
	view, err := weather.ParseView(q.View)
	if err != nil {
		return weather.DashboardRequest{}, err
	}

	return weather.DashboardRequest{
		Query:   weather.Query{Place: q.Place, Lat: q.Lat, Lon: q.Lon},
		Unit:    unit,
		View:    view,
		Refresh: q.Refresh,
	}, nil
}
