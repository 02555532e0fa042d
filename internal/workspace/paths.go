package workspace

import (
	"os"
	"path/filepath"
)

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
