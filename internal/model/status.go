package model

// ScanStatus represents the state of a directory scan
type ScanStatus string

const (
	// ScanStatusPending means the scan is requested but not started
	ScanStatusPending ScanStatus = "Pending"

	// ScanStatusListing means the directory entries are being read
	ScanStatusListing ScanStatus = "Listing"

	// ScanStatusDecoding means image files are being decoded and scaled
	ScanStatusDecoding ScanStatus = "Decoding"

	// ScanStatusCancelled means a newer scan superseded this one
	ScanStatusCancelled ScanStatus = "Cancelled"

	// ScanStatusCompleted means the scan finished and results were delivered
	ScanStatusCompleted ScanStatus = "Completed"

	// ScanStatusError means the directory could not be read at all
	ScanStatusError ScanStatus = "Error"
)

// String returns the string representation of ScanStatus
func (s ScanStatus) String() string {
	return string(s)
}

// IsActive returns true if the scan is still running
func (s ScanStatus) IsActive() bool {
	return s == ScanStatusListing || s == ScanStatusDecoding
}

// IsFinished returns true if the scan is in a terminal state (completed, cancelled, or error)
func (s ScanStatus) IsFinished() bool {
	return s == ScanStatusCompleted || s == ScanStatusCancelled || s == ScanStatusError
}
