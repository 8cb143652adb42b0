package model

// Package model defines the data shared between the image loader, the layout
// engine and the UI: display items, derived rows, layout configuration and
// scan results. Items are addressed by their index in the registry.
