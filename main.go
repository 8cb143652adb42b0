package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/photo-viewer/internal/config"
	"github.com/ytget/photo-viewer/internal/imageload"
	"github.com/ytget/photo-viewer/internal/platform"
	"github.com/ytget/photo-viewer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.photo-viewer"
	AppName = "Photo Viewer"
)

var (
	galleryDir string
	workers    int
	noWatch    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "photo-viewer",
		Short:         "desktop image gallery with a responsive row layout",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGallery,
	}
	rootCmd.Flags().StringVar(&galleryDir, "dir", "", "directory to show (overrides the saved one for this run)")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "parallel image decodes (1-16, default from settings)")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload when the directory changes")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", AppName, version)
		},
	}

	rootCmd.AddCommand(newLayoutCmd(), versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runGallery(cmd *cobra.Command, args []string) error {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)

	dir := galleryDir
	if dir == "" {
		dir = settings.GetGalleryDirectory()
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		fmt.Printf("failed to ensure gallery dir: %v\n", err)
	}

	maxWorkers := settings.GetDecodeWorkers()
	if cmd.Flags().Changed("workers") {
		maxWorkers = workers
	}

	// Layout values are fixed for the session
	width := settings.GetWindowWidth()
	height := settings.GetWindowHeight()
	rowHeight := config.RowHeight(height, settings.GetRowRatio())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(float32(width), float32(height)))

	loader := imageload.NewService(rowHeight, maxWorkers)

	root := ui.NewRootUI(myWindow, myApp, loader, ui.Options{
		Directory:  dir,
		RowHeight:  rowHeight,
		RowSpacing: settings.GetRowSpacing(),
		Width:      width,
		Height:     height,
		Watch:      settings.GetWatchDirectory() && !noWatch,
	})
	root.LoadDirectory(dir)

	myWindow.ShowAndRun()
	return nil
}
