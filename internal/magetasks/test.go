package magetasks

// TestAll runs all tests.
func TestAll() error {
	return Run("Tests", "go", "test", "./...")
}

// TestCoverage runs tests with coverage and prints the per-function summary.
func TestCoverage() error {
	if err := Run("Test Coverage", "go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return Run("Coverage Report", "go", "tool", "cover", "-func=coverage.out")
}

// TestRace runs tests with race detector.
func TestRace() error {
	return Run("Race Detector", "go", "test", "-race", "./...")
}
