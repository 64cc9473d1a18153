package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyBag(t *testing.T) {
	bag := EmptyBag()

	assert.Len(t, bag, 4)
	for _, c := range Categories {
		discs, ok := bag[c]
		assert.True(t, ok, "category %s should be present", c)
		assert.NotNil(t, discs)
		assert.Empty(t, discs)
	}
	assert.Equal(t, 0, bag.Count())
}

func TestBag_DiscsAbsentCategory(t *testing.T) {
	bag := Bag{DistanceDrivers: {{ID: 1, Name: "Destroyer"}}}

	assert.Len(t, bag.Discs(DistanceDrivers), 1)
	assert.NotNil(t, bag.Discs(PuttApproach))
	assert.Empty(t, bag.Discs(PuttApproach))
}

func TestBag_AllDiscsKeepsCategoryOrder(t *testing.T) {
	bag := Bag{
		PuttApproach:    {{ID: 4, Name: "Aviar"}},
		DistanceDrivers: {{ID: 1, Name: "Destroyer"}, {ID: 2, Name: "Wraith"}},
		MidRanges:       {{ID: 3, Name: "Buzzz"}},
	}

	var names []string
	for _, d := range bag.AllDiscs() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Destroyer", "Wraith", "Buzzz", "Aviar"}, names)
	assert.Equal(t, 4, bag.Count())
}

func TestBag_Normalize(t *testing.T) {
	bag := Bag{
		MidRanges:         {{ID: 3, Name: "Buzzz"}},
		Category("Other"): {{ID: 9, Name: "Frisbee"}},
	}

	out := bag.Normalize()
	assert.Len(t, out, 4)
	assert.Equal(t, []Disc{{ID: 3, Name: "Buzzz"}}, out[MidRanges])
	assert.Empty(t, out[DistanceDrivers])
	_, ok := out[Category("Other")]
	assert.False(t, ok)
}

func TestFlightValue_UnmarshalJSON(t *testing.T) {
	var disc Disc
	payload := `{"id": 7, "disc_name": "Teebird", "brand": "Innova", "speed": 7, "glide": "5", "turn": -0.5, "fade": null}`
	require.NoError(t, json.Unmarshal([]byte(payload), &disc))

	assert.Equal(t, 7, disc.ID)
	assert.Equal(t, "Teebird", disc.Name)
	assert.Equal(t, FlightValue("7"), disc.Speed)
	assert.Equal(t, FlightValue("5"), disc.Glide)
	assert.Equal(t, FlightValue("-0.5"), disc.Turn)
	assert.True(t, disc.Fade.IsZero())
	assert.Equal(t, "7 | 5 | -0.5 | -", disc.FlightNumbers())
	assert.True(t, disc.HasDetails())
}

func TestFlightValue_RejectsObjects(t *testing.T) {
	var v FlightValue
	assert.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &v))
}

func TestDisc_HasDetails(t *testing.T) {
	assert.False(t, Disc{Name: "Destroyer", Category: DistanceDrivers}.HasDetails())
	assert.True(t, Disc{Name: "Destroyer", Brand: "Innova"}.HasDetails())
}
