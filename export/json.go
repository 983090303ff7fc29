package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/hb9tf/profilegen/profile"
)

const (
	// DefaultFile is where JSONFile writes when no path is given.
	DefaultFile = "profiles.json"

	jsonIndent = "  "
	fileMode   = 0o644
)

// Encode returns the pretty printed JSON document for set.
func Encode(set profile.Set) ([]byte, error) {
	data, err := json.MarshalIndent(set, "", jsonIndent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// JSON writes the profile set to W, e.g. stdout.
type JSON struct {
	W io.Writer
}

func (j *JSON) Write(ctx context.Context, set profile.Set) error {
	data, err := Encode(set)
	if err != nil {
		return fmt.Errorf("unable to encode profiles: %w", err)
	}
	if _, err := j.W.Write(data); err != nil {
		return fmt.Errorf("unable to write profiles: %w", err)
	}
	return nil
}

// JSONFile writes the profile set to Path, replacing any existing file.
type JSONFile struct {
	Path string
}

func (j *JSONFile) path() string {
	if j.Path == "" {
		return DefaultFile
	}
	return j.Path
}

func (j *JSONFile) Write(ctx context.Context, set profile.Set) error {
	data, err := Encode(set)
	if err != nil {
		return fmt.Errorf("unable to encode profiles: %w", err)
	}
	if err := os.WriteFile(j.path(), data, fileMode); err != nil {
		return fmt.Errorf("unable to write file %q: %w", j.path(), err)
	}
	glog.V(1).Infof("wrote %d profiles (%d bytes) to %s", len(set), len(data), j.path())
	return nil
}

// ReadFile parses a file written by JSONFile.
func ReadFile(path string) (profile.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set profile.Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("unable to parse %q: %w", path, err)
	}
	return set, nil
}
