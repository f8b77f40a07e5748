package gart

import (
	"testing"
)

func TestCrosses(t *testing.T) {
	tests := []struct {
		x1, x2 Line
		want   bool
	}{
		{
			Line{V(1, 1), V(10, 1)},
			Line{V(1, 2), V(10, 2)},
			false,
		}, {
			Line{V(10, 0), V(0, 10)},
			Line{V(0, 0), V(10, 10)},
			true,
		}, {
			Line{V(-5, -5), V(0, 0)},
			Line{V(1, 1), V(10, 10)},
			false,
		}, {
			// touching end points count as crossing
			Line{V(0, 0), V(5, 5)},
			Line{V(5, 5), V(10, 0)},
			true,
		}, {
			Line{V(0, 0.3), V(1, 0.3)},
			Line{V(0, 0.7), V(1, 0.7)},
			false,
		}, {
			// a twisted band: the tops end where the bottoms start
			Line{V(0, 0.3), V(1, 0.7)},
			Line{V(0, 0.7), V(1, 0.3)},
			true,
		},
	}

	for _, tt := range tests {
		if got := tt.x1.Crosses(tt.x2); got != tt.want {
			t.Errorf("Want %v.Crosses(%v) = %v, got %v", tt.x1, tt.x2, tt.want, got)
		}
		if got := tt.x2.Crosses(tt.x1); got != tt.want {
			t.Errorf("Want %v.Crosses(%v) = %v, got %v", tt.x2, tt.x1, tt.want, got)
		}
	}
}
