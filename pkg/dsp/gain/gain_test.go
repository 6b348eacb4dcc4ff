package gain

import (
	"math"
	"testing"
)

func TestLinearDbRoundTrip(t *testing.T) {
	tests := []struct {
		linear float32
		db     float32
	}{
		{1.0, 0},
		{0.5, -6.0206},
		{0.1, -20},
		{2.0, 6.0206},
	}

	for _, test := range tests {
		if got := LinearToDb(test.linear); math.Abs(float64(got-test.db)) > 0.001 {
			t.Errorf("LinearToDb(%f) = %f, want %f", test.linear, got, test.db)
		}
		if got := DbToLinear(test.db); math.Abs(float64(got-test.linear)) > 0.001 {
			t.Errorf("DbToLinear(%f) = %f, want %f", test.db, got, test.linear)
		}
	}
}

func TestConversionFloors(t *testing.T) {
	if got := LinearToDb(0); got != MinDB {
		t.Errorf("LinearToDb(0) = %f, want %f", got, float32(MinDB))
	}
	if got := LinearToDb(-1); got != MinDB {
		t.Errorf("LinearToDb(-1) = %f, want %f", got, float32(MinDB))
	}
	if got := DbToLinear(MinDB); got != 0 {
		t.Errorf("DbToLinear(MinDB) = %f, want 0", got)
	}
}

func TestPeak(t *testing.T) {
	block := [][]float32{
		{0.1, -0.7, 0.3},
		{0.2, 0.5, -0.4},
	}
	if got := Peak(block); got != 0.7 {
		t.Errorf("Peak() = %f, want 0.7", got)
	}
	if got := Peak(nil); got != 0 {
		t.Errorf("Peak(nil) = %f, want 0", got)
	}
}
