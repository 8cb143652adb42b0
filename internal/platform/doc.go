package platform

// Package platform contains OS/platform integration: image file discovery,
// directory watching, standard picture folders, and OS open/reveal.
