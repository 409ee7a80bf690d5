package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryMove(t *testing.T) {
	// (0,0) <-> (1,0) open, everything else closed.
	g := openPairs(t, 2, pair{C(0, 0), East})

	tests := []struct {
		name   string
		from   Coord
		dir    Direction
		want   Coord
		wantOK bool
	}{
		{"through open passage", C(0, 0), East, C(1, 0), true},
		{"back through passage", C(1, 0), West, C(0, 0), true},
		{"blocked by inner wall", C(0, 0), South, C(0, 0), false},
		{"blocked by boundary north", C(0, 0), North, C(0, 0), false},
		{"blocked by boundary west", C(0, 0), West, C(0, 0), false},
		{"blocked by boundary east", C(1, 0), East, C(1, 0), false},
		{"outside grid", C(4, 4), North, C(4, 4), false},
		{"invalid direction", C(0, 0), Direction(9), C(0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TryMove(g, tc.from, tc.dir)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
