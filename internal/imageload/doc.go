package imageload

// Package imageload scans a directory for image files, decodes them in a
// bounded worker pool and scales each one to the shared row height. Results
// are handed back through a post function so the registry is only touched on
// the UI goroutine, and every load carries a generation so superseded scans
// are dropped.
