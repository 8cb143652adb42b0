package gallery

import "testing"

func TestSpacing(t *testing.T) {
	tests := []struct {
		name      string
		usedWidth int
		count     int
		maxWidth  int
		gap       int
	}{
		{"three of 300", 900, 3, 1000, 25},
		{"one of 600", 600, 1, 1000, 200},
		{"floor division", 900, 2, 1000, 33},
		{"full row", 1000, 2, 1000, 0},
		{"oversized clamps", 1500, 1, 1000, 0},
		{"empty row", 0, 0, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap, startX := Spacing(tt.usedWidth, tt.count, tt.maxWidth)
			if gap != tt.gap {
				t.Errorf("Spacing(%d, %d, %d) gap = %d, expected %d", tt.usedWidth, tt.count, tt.maxWidth, gap, tt.gap)
			}
			if startX != gap {
				t.Errorf("startX = %d, expected it to equal gap %d", startX, gap)
			}
			if gap < 0 {
				t.Errorf("gap must never be negative, got %d", gap)
			}
		})
	}
}

func TestSpacing_RightEdgeFits(t *testing.T) {
	for maxWidth := 1; maxWidth < 400; maxWidth += 7 {
		for count := 1; count < 6; count++ {
			used := count * 10
			gap, x := Spacing(used, count, maxWidth)
			for i := 0; i < count; i++ {
				x += 10 + gap
			}
			// x is now the right edge of the last item plus one gap
			if used < maxWidth && x > maxWidth {
				t.Errorf("maxWidth=%d count=%d: right edge plus gap %d exceeds max width", maxWidth, count, x)
			}
		}
	}
}
