package schedule

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edulify/coursecal/course"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestColorForDeterminism(t *testing.T) {
	c := course.Course{ID: "course-42", Category: course.CategoryInternal}

	first := ColorFor(c)
	assert.Regexp(t, hexColor, first)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ColorFor(c), "same course must always render the same color")
	}
}

func TestColorForCategoryBands(t *testing.T) {
	internal := course.Course{ID: "course-42", Category: course.CategoryInternal}
	external := course.Course{ID: "course-42", Category: course.CategoryExternal}

	assert.NotEqual(t, ColorFor(internal), ColorFor(external),
		"categories draw from distinct hue bands")
}

func TestColorForVariesByID(t *testing.T) {
	colors := make(map[string]bool)
	for _, id := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		colors[ColorFor(course.Course{ID: id, Category: course.CategoryInternal})] = true
	}
	assert.Greater(t, len(colors), 1, "hashing should spread distinct ids across hues")
}

func TestHslToRGBPrimaries(t *testing.T) {
	r, g, b := hslToRGB(0, 1, 0.5)
	assert.Equal(t, []uint8{255, 0, 0}, []uint8{r, g, b})

	r, g, b = hslToRGB(120, 1, 0.5)
	assert.Equal(t, []uint8{0, 255, 0}, []uint8{r, g, b})

	r, g, b = hslToRGB(240, 1, 0.5)
	assert.Equal(t, []uint8{0, 0, 255}, []uint8{r, g, b})

	r, g, b = hslToRGB(0, 0, 1)
	assert.Equal(t, []uint8{255, 255, 255}, []uint8{r, g, b})
}
