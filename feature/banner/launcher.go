package banner

import (
	"fmt"

	"github.com/pkg/browser"
)

// Launcher opens a URL in the user's browser.
type Launcher interface {
	Open(url string) error
}

// SystemLauncher opens URLs with the platform's default handler.
type SystemLauncher struct{}

// Open hands url to the platform opener.
func (SystemLauncher) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
