package geom

import "testing"

func TestRectFromCorners(t *testing.T) {
	r := RectFromCorners(Point{X: 5, Y: 10}, Point{X: 1, Y: 2})
	if r.OriginX != 1 || r.OriginY != 2 {
		t.Errorf("origin = (%v, %v), want (1, 2)", r.OriginX, r.OriginY)
	}
	if r.Width != 4 || r.Height != 8 {
		t.Errorf("size = %vx%v, want 4x8", r.Width, r.Height)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    Rect{OriginX: 0, OriginY: 0, Width: 10, Height: 10},
			b:    Rect{OriginX: 5, OriginY: 5, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "disjoint",
			a:    Rect{OriginX: 0, OriginY: 0, Width: 10, Height: 10},
			b:    Rect{OriginX: 20, OriginY: 20, Width: 5, Height: 5},
			want: false,
		},
		{
			name: "touching edge",
			a:    Rect{OriginX: 0, OriginY: 0, Width: 10, Height: 10},
			b:    Rect{OriginX: 10, OriginY: 0, Width: 5, Height: 5},
			want: true,
		},
		{
			name: "contained",
			a:    Rect{OriginX: 0, OriginY: 0, Width: 10, Height: 10},
			b:    Rect{OriginX: 2, OriginY: 2, Width: 3, Height: 3},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	var b Bounds
	if !b.Empty() {
		t.Fatal("zero Bounds should be empty")
	}
	b.Add(Point{X: 3, Y: -1})
	b.Add(Point{X: -2, Y: 4})
	b.Add(Point{X: 0, Y: 0})

	r := b.Rect()
	want := Rect{OriginX: -2, OriginY: -1, Width: 5, Height: 5}
	if r != want {
		t.Errorf("Rect() = %+v, want %+v", r, want)
	}
}

func TestSegmentDegenerate(t *testing.T) {
	if !(Segment{Start: Point{X: 1, Y: 1}, End: Point{X: 1, Y: 1}}).Degenerate() {
		t.Error("identical endpoints should be degenerate")
	}
	if (Segment{Start: Point{X: 1, Y: 1}, End: Point{X: 2, Y: 1}}).Degenerate() {
		t.Error("distinct endpoints should not be degenerate")
	}
}
