package gart

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSafeWriteFile(t *testing.T) {
	dir := t.TempDir()
	r := NewRaster(8, 8)

	fname := filepath.Join(dir, "out", "frame.png")
	if err := SafeWriteFile(r, fname); err != nil {
		t.Fatalf("SafeWriteFile: %v", err)
	}
	if st, err := os.Stat(fname); err != nil || st.Size() == 0 {
		t.Errorf("Want a non empty %s, got %v", fname, err)
	}

	if err := SafeWriteFile(r, filepath.Join(dir, "frame.svg")); err == nil {
		t.Errorf("Want error writing svg from a raster")
	}
	vec := filepath.Join(dir, "vector", "frame.v1.svg")
	if err := SafeWriteFile(NewContext(8, 8), vec); err != nil {
		t.Errorf("SafeWriteFile(%s): %v", vec, err)
	}
	left, _ := filepath.Glob(filepath.Join(dir, "gart.*"))
	if len(left) != 0 {
		t.Errorf("Temp files left behind: %v", left)
	}
}

func TestSeedFilename(t *testing.T) {
	s, err := Init("ff")
	if err != nil {
		t.Fatal(err)
	}
	if s.GetSeed() != 255 {
		t.Errorf("Want seed 255, got %d", s.GetSeed())
	}
	a := s.Rand().Int63()
	s2, _ := Init("ff")
	if b := s2.Rand().Int63(); a != b {
		t.Errorf("Want the same seed to repeat, got %d and %d", a, b)
	}
	if _, err := Init("not hex"); err == nil {
		t.Errorf("Want error for bad hex seed")
	}
}

func TestSeedAt(t *testing.T) {
	tests := []struct {
		at   time.Time
		want int64
	}{
		{time.Unix(epoch2020, 0), 0},
		{time.Unix(epoch2020+1, 5), int64(time.Second) + 5},
		{time.Unix(epoch2020+86400, 0), 86400 * int64(time.Second)},
	}
	for _, test := range tests {
		if got := seedAt(test.at); got != test.want {
			t.Errorf("seedAt(%v) = %d, want %d", test.at, got, test.want)
		}
	}
	if now := seedAt(time.Now()); now >= time.Now().UnixNano() {
		t.Errorf("Want the seed smaller than the Unix time, got %d", now)
	}
}
