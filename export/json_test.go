package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hb9tf/profilegen/profile"
	"github.com/hb9tf/profilegen/sdr"
)

func testSet(t *testing.T) profile.Set {
	t.Helper()
	records, err := profile.Generate(&profile.Options{
		StartMHz:   400,
		EndMHz:     460,
		Prefix:     "UHF",
		SampleRate: sdr.SampleRate2M4,
		Modulation: sdr.ModulationNFM,
		TuningStep: sdr.TuningStep12k5Hz,
	})
	if err != nil {
		t.Fatalf("profile.Generate() returned error: %s", err)
	}
	set, err := profile.NewSet(records)
	if err != nil {
		t.Fatalf("profile.NewSet() returned error: %s", err)
	}
	return set
}

func TestJSONFileRoundTrip(t *testing.T) {
	set := testSet(t)
	path := filepath.Join(t.TempDir(), DefaultFile)

	exp := &JSONFile{Path: path}
	if err := exp.Write(context.Background(), set); err != nil {
		t.Fatalf("Write() returned error: %s", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() returned error: %s", err)
	}
	if !reflect.DeepEqual(got, set) {
		t.Errorf("ReadFile() = %+v, want %+v", got, set)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile() returned error: %s", err)
	}
	if !strings.HasPrefix(string(raw), "{\n  \"") {
		t.Errorf("file is not indented with two spaces:\n%s", raw)
	}
	if !strings.HasSuffix(string(raw), "}\n") {
		t.Errorf("file does not end with a newline")
	}
}

func TestJSONFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("stale content that is longer than an empty set"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := (&JSONFile{Path: path}).Write(context.Background(), profile.Set{}); err != nil {
		t.Fatalf("Write() returned error: %s", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "{}\n" {
		t.Errorf("file content = %q, want %q", raw, "{}\n")
	}
}

func TestJSONFileWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "profiles.json")
	if err := (&JSONFile{Path: path}).Write(context.Background(), testSet(t)); err == nil {
		t.Error("Write() into a missing directory succeeded, want error")
	}
}

func TestJSONWriterMatchesFile(t *testing.T) {
	set := testSet(t)
	buf := &bytes.Buffer{}
	if err := (&JSON{W: buf}).Write(context.Background(), set); err != nil {
		t.Fatalf("Write() returned error: %s", err)
	}
	want, err := Encode(set)
	if err != nil {
		t.Fatalf("Encode() returned error: %s", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("JSON.Write() output differs from Encode()")
	}
}

func TestReadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("[1,2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Error("ReadFile() on broken JSON succeeded, want error")
	}
}
