package assistant

import (
	"fmt"
	"os"
	"path/filepath"
)

// Detection is the result of probing a target directory for configured
// assistants.
type Detection struct {
	// Detected lists matches in enumeration order, not filesystem order.
	Detected []Type

	// Suggested hints selection UIs: the zero value when nothing was
	// detected, the single match when exactly one was, All when several
	// were. Callers expand All before installing; it never reaches the
	// engine.
	Suggested Type
}

// Detect probes targetDir for assistant marker directories.
func Detect(targetDir string) Detection {
	var det Detection
	for _, t := range known {
		if Has(t, targetDir) {
			det.Detected = append(det.Detected, t)
		}
	}

	switch len(det.Detected) {
	case 0:
		// Suggested stays zero.
	case 1:
		det.Suggested = det.Detected[0]
	default:
		det.Suggested = All
	}
	return det
}

// Has reports whether the assistant's marker directory exists under
// targetDir.
func Has(t Type, targetDir string) bool {
	info, err := os.Stat(filepath.Join(targetDir, t.MarkerDir()))
	return err == nil && info.IsDir()
}

// EnsureDir creates the assistant's marker directory under targetDir if
// missing and returns its path. Calling it repeatedly is harmless.
func EnsureDir(t Type, targetDir string) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("cannot create directory for %q", t)
	}
	dir := filepath.Join(targetDir, t.MarkerDir())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s directory: %w", t.DisplayName(), err)
	}
	return dir, nil
}
