package weather

import (
	"slices"
	"strings"
)

const (
	// DefaultIconID is used when a condition has no icon mapping.
	DefaultIconID = "default"
	// DefaultBackgroundID is the neutral gradient for unmapped conditions.
	DefaultBackgroundID = "from-blue-100 to-blue-500"
	// PlaceholderBackgroundID is shown before any report has been loaded.
	PlaceholderBackgroundID = "from-gray-100 to-gray-300"
)

// PresentationToken is the icon and background gradient for a condition text.
type PresentationToken struct {
	IconID       string `json:"iconId"`
	BackgroundID string `json:"backgroundId"`
}

// Keys are the provider's exact phrasing, trailing spaces included.
var conditionIcons = map[string]string{
	"Sunny":                               "sun",
	"Clear ":                              "sun",
	"Partly Cloudy ":                      "clouds",
	"Partly Cloudy":                       "clouds",
	"Cloudy ":                             "cloudy",
	"Overcast":                            "overcast",
	"Mist":                                "mist",
	"Fog":                                 "foggy",
	"Rain":                                "rainy-day",
	"Light rain":                          "rain",
	"Moderate rain":                       "rain",
	"Heavy rain":                          "heavy-rain",
	"Light drizzle":                       "rain",
	"Patchy rain nearby":                  "rainy-day",
	"Patchy light drizzle":                "rain",
	"Patchy light rain":                   "rain",
	"Patchy light rain with thunder":      "thunder-rain",
	"Moderate or heavy rain shower":       "rainy-day",
	"Torrential rain shower":              "rainy-day",
	"Snow":                                "snow",
	"Light snow ":                         "snow",
	"Patchy light snow":                   "snow",
	"Moderate snow":                       "snow",
	"Moderate or heavy rain with thunder": "thunder-rain",
	"Heavy snow":                          "snow",
	"Blizzard":                            "snow",
	"Thunderstorm":                        "thunderstorm",
	"Thundery outbreaks in nearby":        "thunderstorm",
	"Patchy sleet nearby":                 "sleet",
	"Light sleet":                         "sleet",
	"Moderate or heavy sleet":             "sleet",
	"Ice pellets":                         "sleet",
	"Patchy freezing drizzle nearby":      "freezing-drizzle",
	"Freezing drizzle":                    "freezing-drizzle",
	"Heavy freezing drizzle":              "freezing-drizzle",
}

var conditionBackgrounds = map[string]string{
	"Sunny":         "from-yellow-100 to-orange-200",
	"Clear":         "from-blue-100 to-blue-300",
	"Partly cloudy": "from-gray-100 to-gray-300",
	"Cloudy":        "from-gray-200 to-gray-400",
	"Overcast":      "from-gray-300 to-gray-500",
	"Mist":          "from-gray-200 to-gray-300",
	"Rain":          "from-blue-200 to-blue-400",
	"Light rain":    "from-blue-200 to-blue-400",
	"Moderate rain": "from-blue-300 to-blue-500",
	"Heavy rain":    "from-blue-400 to-blue-600",
	"Snow":          "from-blue-100 to-gray-200",
	"Fog":           "from-gray-200 to-gray-300",
	"Thunderstorm":  "from-gray-400 to-gray-600",
}

// Classifier maps condition text to a PresentationToken. The icon and the
// background are looked up independently and each falls back to its default.
type Classifier struct {
	normalize   bool
	icons       map[string]string
	backgrounds map[string]string
}

var literalClassifier = NewClassifier(false)

// NewClassifier builds a classifier over the built-in tables. With normalize
// set, a condition that misses the literal table is retried trimmed and
// case-folded, so "clear" and "Clear " resolve like "Clear".
func NewClassifier(normalize bool) *Classifier {
	c := &Classifier{normalize: normalize}
	if normalize {
		c.icons = foldKeys(conditionIcons)
		c.backgrounds = foldKeys(conditionBackgrounds)
	}
	return c
}

// Classify maps a condition with the exact-match table.
func Classify(condition string) PresentationToken {
	return literalClassifier.Classify(condition)
}

// Classify never fails; unknown conditions get the default token.
func (c *Classifier) Classify(condition string) PresentationToken {
	return PresentationToken{
		IconID:       c.lookup(conditionIcons, c.icons, condition, DefaultIconID),
		BackgroundID: c.lookup(conditionBackgrounds, c.backgrounds, condition, DefaultBackgroundID),
	}
}

// IconIDs lists every icon the classifier can return, default included.
func IconIDs() []string {
	ids := []string{DefaultIconID}
	for _, id := range conditionIcons {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Normalizing reports whether the classifier falls back to folded keys.
func (c *Classifier) Normalizing() bool {
	return c.normalize
}

func (c *Classifier) lookup(literal, folded map[string]string, condition, def string) string {
	if v, ok := literal[condition]; ok {
		return v
	}
	if c.normalize {
		if v, ok := folded[foldCondition(condition)]; ok {
			return v
		}
	}
	return def
}

func foldCondition(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// foldKeys indexes a table by folded key. Variants that fold to the same key
// map to the same value in both tables, so collisions are harmless.
func foldKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[foldCondition(k)] = v
	}
	return out
}
