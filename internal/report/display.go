package report

import (
	"io"
	"os"
	"runtime"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Displayer shows a saved chart to the user.
type Displayer interface {
	Display(path string) error
}

// NoDisplay skips interactive display.
type NoDisplay struct{}

func (NoDisplay) Display(string) error { return nil }

// SystemViewer opens the chart with the platform's default image viewer.
// Viewer output is discarded so the console shows only our own messages.
type SystemViewer struct {
	// HasSurface reports whether a display is attached; nil means probe.
	HasSurface func() bool
}

func (v SystemViewer) Display(path string) error {
	hasSurface := v.HasSurface
	if hasSurface == nil {
		hasSurface = displaySurfacePresent
	}
	if !hasSurface() {
		log.Debugf("No display surface, not opening %s", path)
		return nil
	}

	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	if err := browser.OpenFile(path); err != nil {
		return errors.Wrapf(err, "failed to open %q in viewer", path)
	}
	return nil
}

// displaySurfacePresent treats X11/Wayland-less unix sessions as headless.
// macOS and Windows always have a desktop session to hand the file to.
func displaySurfacePresent() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
