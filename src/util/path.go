package util

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandPath replaces a leading '~' with the current user's home directory
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		user, err := user.Current()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return user.HomeDir, nil
		} else if strings.HasPrefix(path, "~/") {
			return filepath.Join(user.HomeDir, path[2:]), nil
		} else {
			// We don't care about handling paths like '~user/...' for now
			return "", fmt.Errorf("Expanding of path '%s' is no supported", path)
		}
	}
	return path, nil
}
