package validate

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gruppe-adler/hillmap/internal/utils"
)

// InputFile validates that given path is an existing file
func InputFile(inputPath string) error {
	if utils.IsDirectory(inputPath) {
		return fmt.Errorf("%s is a directory", inputPath)
	}
	if !utils.IsFile(inputPath) {
		return fmt.Errorf("%s: %w", inputPath, fs.ErrNotExist)
	}

	return nil
}

// OutputFile validates that a file can be created at given path
func OutputFile(outputPath string) error {
	if utils.IsDirectory(outputPath) {
		return fmt.Errorf("%s is a directory", outputPath)
	}

	return OutputDirectory(filepath.Dir(outputPath))
}

// OutputDirectory validates that given path is an existing directory
func OutputDirectory(dirPath string) error {
	if !utils.IsDirectory(dirPath) {
		return fmt.Errorf("output directory %s doesn't exist", dirPath)
	}

	return nil
}
