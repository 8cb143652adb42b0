package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ytget/photo-viewer/internal/config"
	"github.com/ytget/photo-viewer/internal/gallery"
	"github.com/ytget/photo-viewer/internal/imageload"
	"github.com/ytget/photo-viewer/internal/model"
)

var (
	layoutWidth   int
	layoutHeight  int
	layoutRatio   int
	layoutSpacing int
	layoutWorkers int
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Align(lipgloss.Right)
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout <dir>",
		Short: "scan a directory and print where every image would be placed",
		Args:  cobra.ExactArgs(1),
		RunE:  runLayout,
	}
	cmd.Flags().IntVar(&layoutWidth, "width", config.DefaultWindowWidth, "viewport width")
	cmd.Flags().IntVar(&layoutHeight, "height", config.DefaultWindowHeight, "window height the row height derives from")
	cmd.Flags().IntVar(&layoutRatio, "ratio", config.DefaultRowRatio, "rows per window height")
	cmd.Flags().IntVar(&layoutSpacing, "spacing", config.DefaultRowSpacing, "row spacing")
	cmd.Flags().IntVar(&layoutWorkers, "workers", imageload.DefaultWorkers, "parallel image decodes")
	return cmd
}

func runLayout(cmd *cobra.Command, args []string) error {
	rowHeight := config.RowHeight(layoutHeight, layoutRatio)
	if rowHeight < 1 {
		return fmt.Errorf("row height %d from --height %d and --ratio %d must be at least 1", rowHeight, layoutHeight, layoutRatio)
	}
	if layoutWidth < 1 {
		return fmt.Errorf("--width must be at least 1, got %d", layoutWidth)
	}

	result, err := scanDirectory(cmd, args[0], rowHeight)
	if err != nil {
		return err
	}

	cfg := model.LayoutConfig{MaxWidth: layoutWidth, RowHeight: rowHeight, RowSpacing: layoutSpacing}
	items := result.DisplayItems()
	widths := make([]int, len(items))
	for i, item := range items {
		widths[i] = item.Width
	}
	rows := gallery.Pack(widths, cfg.MaxWidth)
	placements := gallery.Compute(widths, rows, cfg)

	renderLayout(cmd.OutOrStdout(), items, rows, placements, cfg)
	if result.Skipped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d files skipped\n", result.Skipped)
	}
	return nil
}

// scanDirectory runs one scan and waits for its result
func scanDirectory(cmd *cobra.Command, dir string, rowHeight int) (*model.ScanResult, error) {
	loader := imageload.NewService(rowHeight, layoutWorkers)
	done := make(chan *model.ScanResult, 1)
	loader.SetCompleteCallback(func(r *model.ScanResult) { done <- r })

	if _, err := loader.Load(dir); err != nil {
		return nil, err
	}

	select {
	case result := <-done:
		if result.Err != nil {
			return nil, result.Err
		}
		return result, nil
	case <-cmd.Context().Done():
		loader.Cancel()
		loader.Wait()
		return nil, cmd.Context().Err()
	}
}

// renderLayout prints one table line per placed image
func renderLayout(w io.Writer, items []model.DisplayItem, rows []model.Row, placements []model.Placement, cfg model.LayoutConfig) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "FILE", "ROW", "X", "Y", "WIDTH").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return cellStyle
			default:
				return numberStyle
			}
		})

	for _, p := range placements {
		item := items[p.Index]
		t.Row(
			strconv.Itoa(p.Index),
			filepath.Base(item.Path),
			strconv.Itoa(p.Row),
			strconv.Itoa(p.X),
			strconv.Itoa(p.Y),
			strconv.Itoa(item.Width),
		)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("%d images in %d rows, width %d, row height %d, content height %d",
		len(items), len(rows), cfg.MaxWidth, cfg.RowHeight, len(rows)*cfg.RowHeight)))
}
