package export

import (
	"fmt"
	"os"
)

// WriteBibFile writes BibTeX content to path, replacing any existing file.
func WriteBibFile(path, content string) error {
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	if _, err := file.WriteString(content); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
