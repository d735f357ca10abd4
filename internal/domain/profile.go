package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString decodes either a JSON string or a JSON number. Exported yarn
// profiles are inconsistent about quoting numeric fields like gauge counts.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// ProfileSpecifications mirrors the specifications block of an override
// profile file.
type ProfileSpecifications struct {
	Composition   string     `json:"composition"`
	Weight        string     `json:"weight"`
	Length        string     `json:"length"`
	NeedleSize    string     `json:"needleSize"`
	CrochetHook   string     `json:"crochetHook"`
	GaugeStitches FlexString `json:"gaugeStitches"`
	GaugeRows     FlexString `json:"gaugeRows"`
	Care          string     `json:"care"`
	Origin        string     `json:"origin"`
}

// Profile is the authoritative structured data file for a product. When
// present its fields take precedence over anything mined from reference
// text.
type Profile struct {
	Name           string                `json:"name"`
	Specifications ProfileSpecifications `json:"specifications"`
	Features       []string              `json:"features"`
	BestFor        []string              `json:"bestFor"`
	SEO            struct {
		Keywords []string `json:"keywords"`
	} `json:"seo"`
}

// ReferenceText is a cached research document about a product. Only the raw
// text matters to the extractor; any other keys in the file are ignored.
type ReferenceText struct {
	Data string `json:"data"`
}

// ParseMillimeters extracts the leading millimeter value from a needle or
// hook size string such as "4.5 mm" or "5mm (US 8)". The second return is
// false when no number is found.
func ParseMillimeters(size string) (float64, bool) {
	start := -1
	for i, r := range size {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	end := start
	seenDot := false
	for end < len(size) {
		c := size[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(size[start:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
