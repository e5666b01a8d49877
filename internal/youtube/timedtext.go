package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
)

// timedText covers both caption XML layouts YouTube serves: the classic
// <transcript><text start dur> form and format 3 <timedtext><body><p t d>.
type timedText struct {
	Lines []struct {
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
		Value string  `xml:",chardata"`
	} `xml:"text"`
	Paragraphs []struct {
		T     int64  `xml:"t,attr"`
		D     int64  `xml:"d,attr"`
		Value string `xml:",chardata"`
		Runs  []struct {
			Value string `xml:",chardata"`
		} `xml:"s"`
	} `xml:"body>p"`
}

func (c *Client) fetchTimedText(ctx context.Context, trackURL string) ([]Segment, error) {
	body, err := c.get(ctx, trackURL, "application/xml, text/xml", maxTimedTextBytes)
	if err != nil {
		return nil, fmt.Errorf("fetching caption track: %w", err)
	}
	return parseTimedText(body)
}

func parseTimedText(data []byte) ([]Segment, error) {
	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("parsing caption track: %w", err)
	}

	segments := make([]Segment, 0, len(tt.Lines)+len(tt.Paragraphs))
	for _, line := range tt.Lines {
		segments = append(segments, Segment{
			Text:     cleanCaption(line.Value),
			Start:    line.Start,
			Duration: line.Dur,
		})
	}

	for _, p := range tt.Paragraphs {
		text := p.Value
		if len(p.Runs) > 0 {
			var sb strings.Builder
			for _, run := range p.Runs {
				sb.WriteString(run.Value)
			}
			text = sb.String()
		}
		segments = append(segments, Segment{
			Content:  cleanCaption(text),
			Start:    float64(p.T) / 1000,
			Duration: float64(p.D) / 1000,
		})
	}

	return segments, nil
}

// cleanCaption undoes the second round of entity escaping caption tracks
// carry and flattens line breaks.
func cleanCaption(s string) string {
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
