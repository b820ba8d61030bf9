package mapfile

import (
	"errors"
	"testing"

	"github.com/mod1sim/mod1/terrain"
)

func TestLoadValidFile(t *testing.T) {
	raw := []byte(`{"map":[{"x":10,"y":5,"z":10},{"x":20,"y":-2,"z":20}]}`)
	d := terrain.DefaultDims()

	pts, dup, err := Load(raw, d, terrain.DefaultRimStride)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dup != 0 {
		t.Errorf("expected 0 duplicates, got %d", dup)
	}
	if len(pts) < 2 {
		t.Fatalf("expected augmented points to include the 2 user points, got %d", len(pts))
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	d := terrain.DefaultDims()
	_, _, err := Load([]byte(`{not json`), d, terrain.DefaultRimStride)
	if !errors.Is(err, terrain.ErrMapParse) {
		t.Fatalf("expected ErrMapParse, got %v", err)
	}
}

func TestLoadDuplicatesReported(t *testing.T) {
	raw := []byte(`{"map":[{"x":10,"y":5,"z":10},{"x":10,"y":5,"z":10}]}`)
	d := terrain.DefaultDims()

	_, dup, err := Load(raw, d, terrain.DefaultRimStride)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dup != 1 {
		t.Errorf("expected 1 duplicate, got %d", dup)
	}
}

func TestLoadEmptyMapErrors(t *testing.T) {
	raw := []byte(`{"map":[]}`)
	d := terrain.DefaultDims()
	_, _, err := Load(raw, d, terrain.DefaultRimStride)
	if !errors.Is(err, terrain.ErrMapPointsMissing) {
		t.Fatalf("expected ErrMapPointsMissing, got %v", err)
	}
}

func TestLoadOutOfRangePoint(t *testing.T) {
	d := terrain.DefaultDims()
	raw := []byte(`{"map":[{"x":0,"y":0,"z":5}]}`)
	_, _, err := Load(raw, d, terrain.DefaultRimStride)
	if err == nil {
		t.Fatal("expected an error for an out-of-range x coordinate")
	}
}
