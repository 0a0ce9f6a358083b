package transcript

import (
	"fmt"
	"os"
)

// ReadFile reads the raw transcript from disk.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript %s: %w", path, err)
	}
	return string(data), nil
}
