package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidFolder is returned when a path does not point to a valid folder.
var ErrInvalidFolder = errors.New("does not point to a valid folder")

// ValidateFolderPath checks that path points to an existing folder.
func ValidateFolderPath(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("folder path %q %w", path, ErrInvalidFolder)
	}
	return nil
}

// SortedFiles returns the paths of all regular files directly inside folder,
// sorted by name for consistent behavior across operating systems. Hidden
// files are skipped.
func SortedFiles(folder string) ([]string, error) {
	if err := ValidateFolderPath(folder); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		full := filepath.Join(folder, entry.Name())
		info, err := os.Stat(full)
		if err != nil {
			// broken symlink or the like, not a valid file
			continue
		}
		if info.Mode().IsRegular() {
			res = append(res, full)
		}
	}
	return res, nil
}

// Labels returns the names of all subfolders of folder, excluding hidden
// ones. Sound corpora keep one subfolder per label, so the subfolder names
// double as the label inventory.
func Labels(folder string) ([]string, error) {
	if err := ValidateFolderPath(folder); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			res = append(res, entry.Name())
		}
	}
	return res, nil
}
