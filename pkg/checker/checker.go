package checker

// Checker verifies the integrity of a downloaded file against a recorded
// checksum.
type Checker interface {
	Check(path string) (bool, error)
}
