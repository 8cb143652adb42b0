package gallery

import "log"

// reentrant reports a layout pass requested while another is running
func reentrant(reason string) {
	if debugAssertions {
		panic("gallery: reentrant layout: " + reason)
	}
	log.Printf("Ignoring reentrant layout request: %s", reason)
}
