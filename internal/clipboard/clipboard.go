// Package clipboard provides text writing to the system clipboard.
package clipboard

import (
	"golang.design/x/clipboard"

	"github.com/glint-tui/glint/internal/errors"
	"github.com/glint-tui/glint/internal/logger"
)

// initialized tracks whether the clipboard has been initialized
var initialized bool

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times. On headless systems clipboard
// support may be unavailable; callers should treat that as a degraded mode,
// not a fatal error.
func Init() error {
	if initialized {
		return nil
	}

	if err := clipboard.Init(); err != nil {
		logger.Debug("Clipboard: failed to initialize: %v", err)
		return errors.ClipboardUnavailable(err)
	}

	initialized = true
	logger.Debug("Clipboard: initialized")
	return nil
}

// WriteText places text on the system clipboard.
func WriteText(text string) error {
	if !initialized {
		if err := Init(); err != nil {
			return err
		}
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: wrote %d bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	if !initialized {
		if err := Init(); err != nil {
			return "", err
		}
	}

	textBytes := clipboard.Read(clipboard.FmtText)
	if textBytes == nil {
		return "", nil
	}

	return string(textBytes), nil
}
