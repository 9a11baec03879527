package analyze

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/wichananm65/outfit-finder-backend/internal/apperr"
	"github.com/wichananm65/outfit-finder-backend/internal/clothing"
)

var (
	fencePattern       = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	widestFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")
)

// ExtractFenced returns the JSON object inside the first markdown code fence,
// tagged `json` or untagged. ok is false when the reply has no such fence.
func ExtractFenced(reply string) (inner string, ok bool) {
	return fenced(fencePattern, reply)
}

func fenced(re *regexp.Regexp, reply string) (string, bool) {
	m := re.FindStringSubmatch(reply)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// rawFeatures mirrors clothing.Features with pointers so that missing fields
// can be told apart from empty ones.
type rawFeatures struct {
	Type        *string   `json:"type"`
	Color       *[]string `json:"color"`
	Style       *[]string `json:"style"`
	Pattern     *string   `json:"pattern"`
	Material    *string   `json:"material"`
	Brand       *string   `json:"brand"`
	Description *string   `json:"description"`
}

// ParseFeatures decodes a model reply into Features. The whole reply is tried
// first, then the inside of a fenced block. The record is only returned when
// every required field is present with the right type.
func ParseFeatures(reply string) (clothing.Features, error) {
	f, err := decodeFeatures(reply)
	if err == nil {
		return f, nil
	}
	// the first fence, then everything from the first fence to the last one
	tried := ""
	for _, re := range []*regexp.Regexp{fencePattern, widestFencePattern} {
		inner, ok := fenced(re, reply)
		if !ok || inner == tried {
			continue
		}
		tried = inner
		f, ferr := decodeFeatures(inner)
		if ferr == nil {
			return f, nil
		}
		err = ferr
	}
	return clothing.Features{}, err
}

func decodeFeatures(text string) (clothing.Features, error) {
	var raw rawFeatures
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return clothing.Features{}, apperr.InvalidFeatures("field " + typeErr.Field + " must be " + typeErr.Type.String())
		}
		return clothing.Features{}, &apperr.ParseError{Err: err}
	}

	var missing []string
	check := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}
	check("type", raw.Type != nil)
	check("color", raw.Color != nil)
	check("style", raw.Style != nil)
	check("pattern", raw.Pattern != nil)
	check("material", raw.Material != nil)
	check("description", raw.Description != nil)
	if len(missing) > 0 {
		return clothing.Features{}, apperr.InvalidFeatures("missing fields: " + strings.Join(missing, ", "))
	}

	return clothing.Features{
		Type:        *raw.Type,
		Color:       *raw.Color,
		Style:       *raw.Style,
		Pattern:     *raw.Pattern,
		Material:    *raw.Material,
		Brand:       normalizeBrand(raw.Brand),
		Description: *raw.Description,
	}, nil
}

// normalizeBrand maps the "not visible" spellings a model tends to use to nil.
func normalizeBrand(b *string) *string {
	if b == nil {
		return nil
	}
	v := strings.TrimSpace(*b)
	if v == "" || strings.EqualFold(v, "null") || strings.EqualFold(v, "none") {
		return nil
	}
	return &v
}
