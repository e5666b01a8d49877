package model

import (
	"bytes"
	"encoding/json"
)

// KeyPointKind distinguishes the two shapes a key point can take.
type KeyPointKind int

const (
	// PlainKeyPoint is a bare title string.
	PlainKeyPoint KeyPointKind = iota
	// DetailedKeyPoint carries steps and optional supporting material.
	DetailedKeyPoint
)

func (k KeyPointKind) String() string {
	if k == DetailedKeyPoint {
		return "detailed"
	}
	return "plain"
}

// KeyPointDetail is the object form of a key point.
type KeyPointDetail struct {
	Title            string         `json:"title"`
	Steps            []string       `json:"steps"`
	Example          string         `json:"example,omitempty"`
	Commands         []string       `json:"commands,omitempty"`
	TryThis          string         `json:"tryThis,omitempty"`
	Troubleshooting  string         `json:"troubleshooting,omitempty"`
	ImageDescription string         `json:"imageDescription,omitempty"`
	Timestamp        string         `json:"timestamp,omitempty"`
	StepImages       []StepImage    `json:"stepImages,omitempty"`
	ResourceLinks    []ResourceLink `json:"resourceLinks,omitempty"`
}

// KeyPoint is either a plain string or a detailed object on the wire.
//
// An object only counts as detailed when it carries a steps array, even an
// empty one. Objects without steps render as plain titles. A decoded object
// re-encodes to its original bytes, whitespace aside.
type KeyPoint struct {
	text   string
	detail *KeyPointDetail
	raw    json.RawMessage
}

// NewPlainKeyPoint returns a plain key point.
func NewPlainKeyPoint(text string) KeyPoint {
	return KeyPoint{text: text}
}

// NewDetailedKeyPoint returns a detailed key point.
func NewDetailedKeyPoint(d KeyPointDetail) KeyPoint {
	if d.Steps == nil {
		d.Steps = []string{}
	}
	return KeyPoint{detail: &d}
}

// Kind reports which variant the key point is.
func (k KeyPoint) Kind() KeyPointKind {
	if k.detail != nil && k.detail.Steps != nil {
		return DetailedKeyPoint
	}
	return PlainKeyPoint
}

// Title returns the display title for either variant.
func (k KeyPoint) Title() string {
	if k.detail != nil {
		return k.detail.Title
	}
	return k.text
}

// Detail returns the detailed payload when the key point is detailed.
func (k KeyPoint) Detail() (*KeyPointDetail, bool) {
	if k.Kind() != DetailedKeyPoint {
		return nil, false
	}
	return k.detail, true
}

func (k *KeyPoint) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*k = KeyPoint{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*k = KeyPoint{text: s}
		return nil
	}

	var d KeyPointDetail
	if err := json.Unmarshal(trimmed, &d); err != nil {
		return err
	}
	raw, err := compactJSON(trimmed)
	if err != nil {
		return err
	}
	*k = KeyPoint{detail: &d, raw: raw}
	return nil
}

func (k KeyPoint) MarshalJSON() ([]byte, error) {
	if k.raw != nil {
		return k.raw, nil
	}
	if k.detail != nil {
		return json.Marshal(k.detail)
	}
	return json.Marshal(k.text)
}

func compactJSON(data []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
