package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.New("").Funcs(template.FuncMap{
	"iconURL": func(id string) string { return "/static/icons/" + id + ".svg" },
	"num":     func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}).ParseFS(templateFS, "templates/*.html"))

// pageData is what dashboard.html renders.
type pageData struct {
	weather.Dashboard
	Cities      []weather.CityCard
	CitiesError string
	ToggleUnit  string // link that flips the unit
	ToggleView  string // link that flips the forecast view
	RefreshURL  string
}

type pages struct {
	service *weather.Service
}

func newPages(service *weather.Service) *pages {
	return &pages{service: service}
}

// index renders the full dashboard page. Fetch failures are shown inline.
func (p *pages) index(c *fiber.Ctx) error {
	req, err := parseDashboardQuery(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	d, err := p.service.Dashboard(c.UserContext(), req)
	if err != nil {
		log.Printf("dashboard: %v", err)
	}

	data := pageData{
		Dashboard:  d,
		ToggleUnit: linkFor(d.Query, req, d.Unit.Toggle(), d.View, false),
		ToggleView: linkFor(d.Query, req, d.Unit, d.View.Toggle(), false),
		RefreshURL: linkFor(d.Query, req, d.Unit, d.View, true),
	}

	if len(p.service.CityNames()) > 0 {
		cities, err := p.service.Cities(c.UserContext())
		if err != nil {
			log.Printf("dashboard: cities: %v", err)
			data.CitiesError = weather.MsgCitiesFailed
		}
		data.Cities = p.service.Renderer().Cities(p.service.CityNames(), cities, d.Unit, d.Query)
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
		log.Printf("Template error: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render dashboard")
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// linkFor builds a dashboard URL. Coordinate lookups keep their coordinates;
// everything else links by place name.
func linkFor(place string, req weather.DashboardRequest, unit weather.DisplayUnit, view weather.View, refresh bool) string {
	v := url.Values{}
	if req.Query.HasCoordinates() {
		v.Set("lat", strconv.FormatFloat(*req.Query.Lat, 'f', -1, 64))
		v.Set("lon", strconv.FormatFloat(*req.Query.Lon, 'f', -1, 64))
	} else if place != "" {
		v.Set("q", place)
	}
	v.Set("unit", string(unit))
	v.Set("view", string(view))
	if refresh {
		v.Set("refresh", "true")
	}
	return "/?" + v.Encode()
}
