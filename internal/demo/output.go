package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// castHeader is the header line of an asciicast v2 file.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// GenerateCast writes frames as an asciicast v2 stream, playable with
// asciinema and renderable to a gif with agg. Each frame becomes one
// output event that clears the screen and redraws; annotated frames also
// emit a marker event so players can jump between chapters.
func GenerateCast(w io.Writer, frames []Frame, width, height int) error {
	enc := json.NewEncoder(w)

	header := castHeader{
		Version:   2,
		Width:     width,
		Height:    height,
		Timestamp: time.Now().Unix(),
		Env:       map[string]string{"TERM": "xterm-256color"},
	}
	if err := enc.Encode(&header); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	var elapsed float64
	for _, f := range frames {
		elapsed += f.Delay.Seconds()
		at := roundMillis(elapsed)

		if f.Annotation != "" {
			if err := enc.Encode([]any{at, "m", f.Annotation}); err != nil {
				return fmt.Errorf("writing cast marker: %w", err)
			}
		}

		// Home the cursor and clear before each redraw; cast players need
		// carriage returns, not bare newlines
		data := "\x1b[H\x1b[2J" + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{at, "o", data}); err != nil {
			return fmt.Errorf("writing cast event: %w", err)
		}
	}

	return nil
}

// roundMillis trims event times to millisecond precision so the cast file
// stays readable.
func roundMillis(seconds float64) float64 {
	return math.Round(seconds*1000) / 1000
}
