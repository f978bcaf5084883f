package convolve

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeBase64Image decodes a base64-encoded image (optionally a data URL)
// into a grid. It also returns the detected format string.
func DecodeBase64Image(input string) (*Grid, string, error) {
	raw := stripDataPrefix(input)

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}

	return DecodeImageBytes(data)
}

func stripDataPrefix(input string) string {
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "data:") {
		if idx := strings.Index(input, ","); idx != -1 {
			return input[idx+1:]
		}
	}
	return strings.TrimSpace(input)
}
