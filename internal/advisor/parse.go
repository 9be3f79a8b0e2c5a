package advisor

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultMIMEType is assumed for receipts sent without one.
const DefaultMIMEType = "image/png"

// StripDataURL drops a "data:<mime>;base64," header if there is one.
func StripDataURL(s string) string {
	if i := strings.Index(s, ","); i >= 0 && i+1 < len(s) {
		return s[i+1:]
	}
	return s
}

// DecodePayload turns a base64 string, with or without a data-URL header,
// into raw bytes.
func DecodePayload(s string) ([]byte, error) {
	clean := strings.TrimSpace(StripDataURL(s))
	data, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(clean)
	}
	if err != nil {
		return nil, fmt.Errorf("advisor: decode payload: %w", err)
	}
	return data, nil
}

// cleanModelJSON removes markdown fences and anything around the outermost
// JSON object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		idx := strings.Index(s, "\n")
		if idx == -1 {
			return ""
		}
		s = strings.TrimSpace(s[idx+1:])
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}
	return s
}

func parseReceipt(raw string) (*ReceiptData, error) {
	clean := cleanModelJSON(raw)
	if clean == "" || clean == "null" {
		return nil, ErrEmptyResponse
	}

	var data ReceiptData
	if err := json.Unmarshal([]byte(clean), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableResponse, err)
	}

	data.Description = strings.TrimSpace(data.Description)
	data.Date = strings.TrimSpace(data.Date)
	data.Category = strings.TrimSpace(data.Category)
	if data.Description == "" && data.Amount == 0 {
		return nil, ErrEmptyResponse
	}
	return &data, nil
}
