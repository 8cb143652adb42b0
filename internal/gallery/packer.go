package gallery

import "github.com/ytget/photo-viewer/internal/model"

// Pack partitions items, given by their widths, into rows using greedy
// first-fit in original order. A row is closed before an item when adding it
// would reach maxWidth and the row is not empty, so a lone item wider than
// maxWidth still gets its own row. The last row is whatever remains.
func Pack(widths []int, maxWidth int) []model.Row {
	var rows []model.Row
	var current model.Row

	for i, w := range widths {
		if current.UsedWidth+w >= maxWidth && current.Len() > 0 {
			rows = append(rows, current)
			current = model.Row{}
		}
		current.Items = append(current.Items, i)
		current.UsedWidth += w
	}

	if current.Len() > 0 {
		rows = append(rows, current)
	}
	return rows
}
