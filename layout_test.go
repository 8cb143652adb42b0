package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ytget/photo-viewer/internal/gallery"
	"github.com/ytget/photo-viewer/internal/model"
)

func TestRenderLayout(t *testing.T) {
	items := []model.DisplayItem{
		model.NewDisplayItem("/photos/a.jpg", 300, 198),
		model.NewDisplayItem("/photos/b.jpg", 300, 198),
		model.NewDisplayItem("/photos/c.jpg", 300, 198),
	}
	widths := []int{300, 300, 300}
	cfg := model.LayoutConfig{MaxWidth: 700, RowHeight: 198, RowSpacing: 10}
	rows := gallery.Pack(widths, cfg.MaxWidth)
	placements := gallery.Compute(widths, rows, cfg)

	var buf bytes.Buffer
	renderLayout(&buf, items, rows, placements, cfg)
	out := buf.String()

	for _, want := range []string{"FILE", "a.jpg", "b.jpg", "c.jpg", "208"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "3 images in 2 rows") {
		t.Errorf("Unexpected summary:\n%s", out)
	}
	if strings.Contains(out, "/photos/") {
		t.Error("Paths should be shown as base names")
	}
}

func TestRenderLayout_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderLayout(&buf, nil, nil, nil, model.LayoutConfig{MaxWidth: 1250, RowHeight: 198})
	if !strings.Contains(buf.String(), "0 images in 0 rows") {
		t.Errorf("Unexpected output:\n%s", buf.String())
	}
}

func TestLayoutCmd_MissingDirectory(t *testing.T) {
	cmd := newLayoutCmd()
	cmd.SetArgs([]string{"/does/not/exist"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}

func TestLayoutCmd_RejectsZeroRowHeight(t *testing.T) {
	cmd := newLayoutCmd()
	cmd.SetArgs([]string{t.TempDir(), "--height", "3", "--ratio", "7"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "row height 0") {
		t.Errorf("Expected a row height error, got %v", err)
	}
}
