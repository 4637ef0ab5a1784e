package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRect_ClampsNegativeSize(t *testing.T) {
	r := NewRect(5, 6, -3, -1)
	assert.Equal(t, Rect{X: 5, Y: 6}, r)
	assert.True(t, r.Empty())
}

func TestRect_Intersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"disjoint", Rect{X: 50, Y: 50, W: 1, H: 1}, false},
		{"empty", Rect{X: 2, Y: 2, W: 0, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a))
		})
	}
}

func TestRect_Intersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.Equal(t, Rect{X: 5, Y: 7, W: 5, H: 3}, a.Intersection(Rect{X: 5, Y: 7, W: 20, H: 20}))
	assert.True(t, a.Intersection(Rect{X: 10, Y: 10, W: 5, H: 5}).Empty())
}

func TestRect_TranslateAndEdges(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}.Translate(10, -2)

	assert.Equal(t, Rect{X: 11, Y: 0, W: 3, H: 4}, r)
	assert.Equal(t, 14, r.Right())
	assert.Equal(t, 4, r.Bottom())
	assert.Equal(t, 10, r.MoveBottom(14).Y)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(9, 9))
	assert.False(t, r.Contains(10, 5))
	assert.False(t, r.Contains(-1, 5))
}

func TestRect_ScalePreservesCenter(t *testing.T) {
	r := Rect{X: 100, Y: 200, W: 50, H: 100}
	s := r.Scale(1.2)

	assert.Equal(t, 60, s.W)
	assert.Equal(t, 120, s.H)
	cx, cy := r.Center()
	sx, sy := s.Center()
	assert.Equal(t, cx, sx)
	assert.Equal(t, cy, sy)
}
