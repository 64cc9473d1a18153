package lookup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/shhac/discbag/internal/domain"
	apperrors "github.com/shhac/discbag/internal/errors"
)

// DecodeMode selects the response shape accepted by DecodeBag.
type DecodeMode string

const (
	// DecodeAuto detects the shape of each category from its first element.
	DecodeAuto DecodeMode = "auto"
	// DecodeObjects accepts full disc objects only.
	DecodeObjects DecodeMode = "objects"
	// DecodeNames accepts the legacy array-of-names shape only.
	DecodeNames DecodeMode = "names"
)

// ParseDecodeMode parses a mode name, defaulting to DecodeAuto for "".
func ParseDecodeMode(s string) (DecodeMode, error) {
	switch mode := DecodeMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return DecodeAuto, nil
	case DecodeAuto, DecodeObjects, DecodeNames:
		return mode, nil
	}
	return "", fmt.Errorf("unknown decode mode %q", s)
}

// DecodeBag reads a bag response body: a JSON object keyed by category
// label. Missing categories are empty and unknown keys are ignored.
//
// Legacy name-only discs are given negative IDs so they can still be
// expanded individually. The IDs are never reused within a process, so they
// cannot collide with service IDs or with discs from an earlier response.
func DecodeBag(r io.Reader, mode DecodeMode) (domain.Bag, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedBag, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: body is null", apperrors.ErrMalformedBag)
	}

	bag := domain.EmptyBag()
	for _, category := range domain.Categories {
		data, ok := raw[string(category)]
		if !ok || isNull(data) {
			continue
		}

		shape := mode
		if shape == DecodeAuto || shape == "" {
			shape = detectShape(data)
		}

		switch shape {
		case DecodeNames:
			var names []string
			if err := json.Unmarshal(data, &names); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrMalformedBag, category, err)
			}
			discs := make([]domain.Disc, 0, len(names))
			for _, name := range names {
				discs = append(discs, domain.Disc{ID: nextLegacyID(), Name: name, Category: category})
			}
			bag[category] = discs

		default:
			var discs []domain.Disc
			if err := json.Unmarshal(data, &discs); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrMalformedBag, category, err)
			}
			if discs == nil {
				discs = []domain.Disc{}
			}
			for i := range discs {
				discs[i].Category = category
			}
			bag[category] = discs
		}
	}

	return bag, nil
}

var legacyIDs atomic.Int64

// nextLegacyID returns -1, -2, -3, ... across every decode.
func nextLegacyID() int {
	return int(-legacyIDs.Add(1))
}

// detectShape inspects the first array element: strings mean the legacy
// shape, anything else is treated as disc objects.
func detectShape(data json.RawMessage) DecodeMode {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) < 2 || trimmed[0] != '[' {
		return DecodeObjects
	}
	inner := bytes.TrimSpace(trimmed[1:])
	if len(inner) > 0 && inner[0] == '"' {
		return DecodeNames
	}
	return DecodeObjects
}

func isNull(data json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
