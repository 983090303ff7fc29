package viewer

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/browser"
)

// Output of the launched helper would end up between the prompts.
func init() {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Opener shows a file to the user.
type Opener func(path string) error

// Open hands path to the host's default viewer for its file type. Output of
// the launched helper is discarded.
func Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("unable to open %q: %w", path, err)
	}
	glog.V(1).Infof("opening %s in the default viewer", path)
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("unable to open %q: %w", path, err)
	}
	return nil
}

// Disabled is an Opener that does nothing.
func Disabled(string) error {
	return nil
}
