package weather

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// View selects which forecast strip the dashboard shows.
type View string

const (
	HourlyView View = "hourly"
	DailyView  View = "daily"
)

// maxDailyCards caps the daily strip.
const maxDailyCards = 9

const notAvailable = "N/A"

// ParseView accepts "hourly" and "daily"; empty means hourly.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", HourlyView:
		return HourlyView, nil
	case DailyView:
		return DailyView, nil
	default:
		return "", fmt.Errorf("unknown forecast view %q", s)
	}
}

// Toggle returns the other view.
func (v View) Toggle() View {
	if v == DailyView {
		return HourlyView
	}
	return DailyView
}

// Tile is one labelled value on the dashboard.
type Tile struct {
	IconID string `json:"iconId"`
	Label  string `json:"label"`
	Value  string `json:"value"`
}

// CurrentPanel is the large current-conditions block.
type CurrentPanel struct {
	Token     PresentationToken `json:"token"`
	Temp      float64           `json:"temp"`
	Condition string            `json:"condition"`
}

// HourCard is one entry of the hourly strip.
type HourCard struct {
	Label     string            `json:"label"`
	Temp      float64           `json:"temp"`
	Condition string            `json:"condition"`
	Token     PresentationToken `json:"token"`
}

// DayCard is one entry of the daily strip.
type DayCard struct {
	Label     string            `json:"label"`
	AvgTemp   float64           `json:"avgTemp"`
	Condition string            `json:"condition"`
	Token     PresentationToken `json:"token"`
}

// CityCard is one entry of the reference-city panel.
type CityCard struct {
	City      string            `json:"city"`
	Selected  bool              `json:"selected"`
	HasData   bool              `json:"hasData"`
	Temp      float64           `json:"temp"`
	Condition string            `json:"condition"`
	Token     PresentationToken `json:"token"`
}

// Dashboard is the render-ready view model. Error is set instead of the data
// fields when the fetch failed.
type Dashboard struct {
	Query      string        `json:"query"`
	Place      string        `json:"place,omitempty"`
	GeoLabel   string        `json:"geoLabel,omitempty"`
	Unit       DisplayUnit   `json:"unit"`
	UnitSymbol string        `json:"unitSymbol"`
	View       View          `json:"view"`
	Background string        `json:"background"`
	Current    *CurrentPanel `json:"current,omitempty"`
	LocalTime  FormattedTime `json:"localTime"`
	Details    []Tile        `json:"details,omitempty"`
	Highlights []Tile        `json:"highlights,omitempty"`
	Hours      []HourCard    `json:"hours,omitempty"`
	Days       []DayCard     `json:"days,omitempty"`
	Error      string        `json:"error,omitempty"`
	FetchedAt  time.Time     `json:"fetchedAt,omitempty"`
}

// Renderer turns reports into dashboards. It is stateless apart from its
// classifier and formatter, which are themselves read-only.
type Renderer struct {
	classifier *Classifier
	formatter  *TimeFormatter
}

// NewRenderer wires a classifier and a formatter; nil arguments get the
// literal classifier and a UTC formatter.
func NewRenderer(classifier *Classifier, formatter *TimeFormatter) *Renderer {
	if classifier == nil {
		classifier = literalClassifier
	}
	if formatter == nil {
		formatter = NewTimeFormatter(nil)
	}
	return &Renderer{classifier: classifier, formatter: formatter}
}

// Empty is the dashboard shown before anything was loaded or when loading failed.
func (r *Renderer) Empty(query string, unit DisplayUnit, view View, errMsg string) Dashboard {
	return Dashboard{
		Query:      query,
		Unit:       unit,
		UnitSymbol: unit.Symbol(),
		View:       view,
		Background: PlaceholderBackgroundID,
		Error:      errMsg,
	}
}

// Render builds the dashboard for a report.
func (r *Renderer) Render(query string, report Report, unit DisplayUnit, view View) Dashboard {
	cur := report.Current
	token := r.classifier.Classify(cur.Condition)

	d := Dashboard{
		Query:      query,
		Place:      report.Place.Label(),
		Unit:       unit,
		UnitSymbol: unit.Symbol(),
		View:       view,
		Background: token.BackgroundID,
		Current: &CurrentPanel{
			Token:     token,
			Temp:      unit.Temp(cur.TempC, cur.TempF),
			Condition: cur.Condition,
		},
		LocalTime: r.formatter.Format(report.Place.LocalTime),
		Details: []Tile{
			{IconID: token.IconID, Label: "Condition", Value: cur.Condition},
			{IconID: "humidity", Label: "Humidity", Value: fmt.Sprintf("%d%%", cur.Humidity)},
			{IconID: "wind", Label: "Wind", Value: fmt.Sprintf("%s km/h", formatNumber(cur.WindKph))},
			{IconID: "pressure", Label: "Pressure", Value: fmt.Sprintf("%s mb", formatNumber(cur.PressureMb))},
		},
		Highlights: r.highlights(report, unit),
		FetchedAt:  report.FetchedAt,
	}

	switch view {
	case DailyView:
		d.Days = r.dayCards(report.Forecast, unit)
	default:
		d.Hours = r.hourCards(NextHours(report.Forecast, report.Place.LocalTime), unit)
	}
	return d
}

// Cities builds the reference-city panel in the configured order.
func (r *Renderer) Cities(order []string, data []CityConditions, unit DisplayUnit, selected string) []CityCard {
	byCity := make(map[string]CityConditions, len(data))
	for _, c := range data {
		byCity[c.City] = c
	}

	cards := make([]CityCard, 0, len(order))
	for _, city := range order {
		card := CityCard{City: city, Selected: strings.EqualFold(city, selected)}
		if c, ok := byCity[city]; ok {
			card.HasData = true
			card.Temp = unit.Temp(c.Current.TempC, c.Current.TempF)
			card.Condition = c.Current.Condition
			card.Token = r.classifier.Classify(c.Current.Condition)
		}
		cards = append(cards, card)
	}
	return cards
}

func (r *Renderer) highlights(report Report, unit DisplayUnit) []Tile {
	aqi, sunrise, sunset := notAvailable, notAvailable, notAvailable
	maxMin, maxWind := notAvailable, notAvailable

	if report.Current.AirQualityEPA > 0 {
		aqi = strconv.Itoa(report.Current.AirQualityEPA)
	}
	uv := notAvailable
	if report.Current.UV != 0 {
		uv = formatNumber(report.Current.UV)
	}

	if today := report.Forecast.Day(0); today != nil {
		s := today.Summary
		if s.Astro.Sunrise != "" {
			sunrise = s.Astro.Sunrise
		}
		if s.Astro.Sunset != "" {
			sunset = s.Astro.Sunset
		}
		maxMin = fmt.Sprintf("%s° / %s°",
			formatNumber(unit.Temp(s.MaxTempC, s.MaxTempF)),
			formatNumber(unit.Temp(s.MinTempC, s.MinTempF)))
		maxWind = fmt.Sprintf("%s %s", formatNumber(unit.Wind(s.MaxWindKph, s.MaxWindMph)), unit.WindLabel())
	}

	return []Tile{
		{IconID: "air-quality", Label: "AQI", Value: aqi},
		{IconID: "sunrise", Label: "Sunrise", Value: sunrise},
		{IconID: "sunset", Label: "Sunset", Value: sunset},
		{IconID: "uv-protection", Label: "UV Index", Value: uv},
		{IconID: "temperature", Label: "Max/Min Temp", Value: maxMin},
		{IconID: "wind-turbine", Label: "Max Wind", Value: maxWind},
	}
}

func (r *Renderer) hourCards(hours []HourlyRecord, unit DisplayUnit) []HourCard {
	cards := make([]HourCard, 0, len(hours))
	for _, h := range hours {
		cards = append(cards, HourCard{
			Label:     r.formatter.FormatHour(h.Time),
			Temp:      unit.Temp(h.TempC, h.TempF),
			Condition: h.Condition,
			Token:     r.classifier.Classify(h.Condition),
		})
	}
	return cards
}

func (r *Renderer) dayCards(days ForecastBundle, unit DisplayUnit) []DayCard {
	n := min(len(days), maxDailyCards)
	cards := make([]DayCard, 0, n)
	for _, day := range days[:n] {
		cards = append(cards, DayCard{
			Label:     r.formatter.FormatDay(day.Date),
			AvgTemp:   unit.Temp(day.Summary.AvgTempC, day.Summary.AvgTempF),
			Condition: day.Summary.Condition,
			Token:     r.classifier.Classify(day.Summary.Condition),
		})
	}
	return cards
}

// formatNumber prints provider numbers without trailing zeros ("12.5", "7").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Classify exposes the renderer's condition mapping.
func (r *Renderer) Classify(condition string) PresentationToken {
	return r.classifier.Classify(condition)
}
