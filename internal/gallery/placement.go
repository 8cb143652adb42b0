package gallery

import "github.com/ytget/photo-viewer/internal/model"

// RowY returns the top of row r. RowSpacing is a flat margin added once per
// row, not accumulated between rows.
func RowY(r int, cfg model.LayoutConfig) int {
	return r*cfg.RowHeight + cfg.RowSpacing
}

// Compute returns the coordinates of every item in rows without touching any
// surface. widths is indexed by the registry indices stored in rows.
func Compute(widths []int, rows []model.Row, cfg model.LayoutConfig) []model.Placement {
	placements := make([]model.Placement, 0, len(widths))
	for r, row := range rows {
		gap, x := Spacing(row.UsedWidth, row.Len(), cfg.MaxWidth)
		y := RowY(r, cfg)
		for _, idx := range row.Items {
			placements = append(placements, model.Placement{Index: idx, Row: r, X: x, Y: y})
			x += widths[idx] + gap
		}
	}
	return placements
}

// Place issues exactly one command per item: Place for items that were never
// placed (marking them placed), Move for the rest. It returns the coordinates
// it used.
func Place(surface Surface, registry *Registry, rows []model.Row, cfg model.LayoutConfig) []model.Placement {
	placements := Compute(registry.Widths(), rows, cfg)
	for _, p := range placements {
		if registry.IsPlaced(p.Index) {
			surface.Move(p.Index, p.X, p.Y)
			continue
		}
		surface.Place(p.Index, p.X, p.Y)
		registry.MarkPlaced(p.Index)
	}
	return placements
}
