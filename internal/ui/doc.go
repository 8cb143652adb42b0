package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the gallery surface for the layout controller, wires thumbnail
// events to selection and the enlarged preview, and shows scan progress,
// notifications, and settings. All UI strings are localized via Localization.
