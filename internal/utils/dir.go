package utils

import (
	"os"
)

func stat(name string) (os.FileInfo, bool) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, false
	}
	return info, true
}

// IsFile tests wether given path exists and is a file
func IsFile(filePath string) bool {
	info, ok := stat(filePath)
	return ok && info.Mode().IsRegular()
}

// IsDirectory tests wether given path exists and is a directory
func IsDirectory(dirPath string) bool {
	info, ok := stat(dirPath)
	return ok && info.IsDir()
}
