package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKnownConditions(t *testing.T) {
	for condition, icon := range conditionIcons {
		got := Classify(condition)
		assert.Equal(t, icon, got.IconID, condition)
	}
	for condition, bg := range conditionBackgrounds {
		got := Classify(condition)
		assert.Equal(t, bg, got.BackgroundID, condition)
	}

	assert.Equal(t, PresentationToken{IconID: "sun", BackgroundID: "from-yellow-100 to-orange-200"}, Classify("Sunny"))
	assert.Equal(t, PresentationToken{IconID: "heavy-rain", BackgroundID: "from-blue-400 to-blue-600"}, Classify("Heavy rain"))
}

func TestClassifyDefaults(t *testing.T) {
	want := PresentationToken{IconID: DefaultIconID, BackgroundID: DefaultBackgroundID}

	for _, condition := range []string{"", "Volcanic ash", "sunny", "Heavy Rain", " Sunny"} {
		assert.Equal(t, want, Classify(condition), condition)
	}
}

func TestClassifyLiteralVariants(t *testing.T) {
	// Icons know "Clear " with the trailing space, backgrounds know "Clear".
	assert.Equal(t, PresentationToken{IconID: "sun", BackgroundID: DefaultBackgroundID}, Classify("Clear "))
	assert.Equal(t, PresentationToken{IconID: DefaultIconID, BackgroundID: "from-blue-100 to-blue-300"}, Classify("Clear"))

	// Only one of the two tables knows "Partly cloudy" in this casing.
	assert.Equal(t, PresentationToken{IconID: DefaultIconID, BackgroundID: "from-gray-100 to-gray-300"}, Classify("Partly cloudy"))
}

func TestNormalizingClassifier(t *testing.T) {
	c := NewClassifier(true)
	assert.True(t, c.Normalizing())

	assert.Equal(t, PresentationToken{IconID: "sun", BackgroundID: "from-blue-100 to-blue-300"}, c.Classify("Clear"))
	assert.Equal(t, PresentationToken{IconID: "sun", BackgroundID: "from-blue-100 to-blue-300"}, c.Classify("  clear "))
	assert.Equal(t, PresentationToken{IconID: "clouds", BackgroundID: "from-gray-100 to-gray-300"}, c.Classify("Partly cloudy"))
	assert.Equal(t, "heavy-rain", c.Classify("HEAVY RAIN").IconID)

	assert.Equal(t, PresentationToken{IconID: DefaultIconID, BackgroundID: DefaultBackgroundID}, c.Classify("Volcanic ash"))
	assert.False(t, NewClassifier(false).Normalizing())
}

func TestIconIDs(t *testing.T) {
	ids := IconIDs()
	assert.Contains(t, ids, DefaultIconID)
	assert.IsIncreasing(t, ids)
	for _, id := range conditionIcons {
		assert.Contains(t, ids, id)
	}
}
