package lookup

import (
	"strings"
	"testing"

	"github.com/shhac/discbag/internal/domain"
	apperrors "github.com/shhac/discbag/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBag_ShapeBUnchanged(t *testing.T) {
	bag, err := DecodeBag(strings.NewReader(shapeBBody), DecodeObjects)
	require.NoError(t, err)

	want := domain.Disc{
		ID: 3, Name: "Aviar", Brand: "Innova",
		Speed: "2", Glide: "3", Turn: "0", Fade: "1",
		Category: domain.PuttApproach,
	}
	assert.Equal(t, []domain.Disc{want}, bag[domain.PuttApproach])
}

func TestDecodeBag_LegacyNamesGetUniqueIDs(t *testing.T) {
	body := `{"Distance Drivers": ["Destroyer", "Wraith"], "Mid-Ranges": ["Buzzz"], "Putt/Approach": ["Aviar"]}`
	bag, err := DecodeBag(strings.NewReader(body), DecodeAuto)
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, d := range bag.AllDiscs() {
		assert.False(t, seen[d.ID], "duplicate id %d", d.ID)
		seen[d.ID] = true
	}
	assert.Len(t, seen, 4)
	for id := range seen {
		assert.Negative(t, id)
	}
	assert.Equal(t, domain.MidRanges, bag[domain.MidRanges][0].Category)
	assert.Empty(t, bag[domain.FairwayDrivers], "missing category defaults to empty")
}

func TestDecodeBag_LegacyIDsNeverRepeatAcrossResponses(t *testing.T) {
	first, err := DecodeBag(strings.NewReader(`{"Distance Drivers": ["Destroyer"]}`), DecodeAuto)
	require.NoError(t, err)
	second, err := DecodeBag(strings.NewReader(`{"Distance Drivers": ["Wraith"]}`), DecodeAuto)
	require.NoError(t, err)

	assert.NotEqual(t, first[domain.DistanceDrivers][0].ID, second[domain.DistanceDrivers][0].ID)
}

func TestDecodeBag_MixedShapesKeepIDsDistinct(t *testing.T) {
	body := `{"Distance Drivers": ["Wraith"], "Fairway Drivers": [{"id": 1, "disc_name": "Teebird"}], "Mid-Ranges": [{"id": 2, "disc_name": "Roc3"}]}`
	bag, err := DecodeBag(strings.NewReader(body), DecodeAuto)
	require.NoError(t, err)

	wraith := bag[domain.DistanceDrivers][0]
	assert.Equal(t, 1, bag[domain.FairwayDrivers][0].ID)
	assert.Equal(t, 2, bag[domain.MidRanges][0].ID)
	assert.NotEqual(t, 1, wraith.ID)
	assert.NotEqual(t, 2, wraith.ID)
	assert.Negative(t, wraith.ID)
}

func TestDecodeBag_IgnoresUnknownKeysAndNulls(t *testing.T) {
	body := `{"Distance Drivers": null, "Drivers": ["X"], "Fairway Drivers": [{"id": 5, "disc_name": "Leopard"}]}`
	bag, err := DecodeBag(strings.NewReader(body), DecodeAuto)
	require.NoError(t, err)

	assert.Len(t, bag, 4)
	assert.Empty(t, bag[domain.DistanceDrivers])
	assert.Equal(t, "Leopard", bag[domain.FairwayDrivers][0].Name)
}

func TestDecodeBag_ModeMismatch(t *testing.T) {
	_, err := DecodeBag(strings.NewReader(`{"Mid-Ranges": ["Buzzz"]}`), DecodeObjects)
	assert.ErrorIs(t, err, apperrors.ErrMalformedBag)

	_, err = DecodeBag(strings.NewReader(shapeBBody), DecodeNames)
	assert.ErrorIs(t, err, apperrors.ErrMalformedBag)
}

func TestDecodeBag_Malformed(t *testing.T) {
	for _, body := range []string{"", "null", "[]", `{"Mid-Ranges": 3}`} {
		t.Run(body, func(t *testing.T) {
			_, err := DecodeBag(strings.NewReader(body), DecodeAuto)
			assert.ErrorIs(t, err, apperrors.ErrMalformedBag)
		})
	}
}

func TestParseDecodeMode(t *testing.T) {
	tests := []struct {
		in      string
		want    DecodeMode
		wantErr bool
	}{
		{"", DecodeAuto, false},
		{"auto", DecodeAuto, false},
		{" Objects ", DecodeObjects, false},
		{"names", DecodeNames, false},
		{"strings", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDecodeMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
