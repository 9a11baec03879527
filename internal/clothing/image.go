package clothing

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// DefaultMediaType is assumed when the payload carries no data URL envelope.
const DefaultMediaType = "image/jpeg"

var dataURLPattern = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

// Image is an uploaded photo as received from the client. Data is still
// base64 encoded.
type Image struct {
	MediaType string
	Data      string
}

// ParseImage splits a `data:<media-type>;base64,<payload>` URL into its parts.
// Any other input is treated as raw base64 JPEG data.
func ParseImage(s string) Image {
	if strings.HasPrefix(s, "data:") {
		if m := dataURLPattern.FindStringSubmatch(s); m != nil {
			return Image{MediaType: m[1], Data: m[2]}
		}
	}
	return Image{MediaType: DefaultMediaType, Data: s}
}

// Bytes decodes the base64 payload.
func (i Image) Bytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(i.Data)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return b, nil
}

// DataURL re-assembles the image into a data URL.
func (i Image) DataURL() string {
	return "data:" + i.MediaType + ";base64," + i.Data
}
