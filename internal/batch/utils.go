package batch

import (
	"os/user"
	"path/filepath"
	"strings"
)

// MapPath expands a leading ~/ to the current user's home directory.
func MapPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		curUser, err := user.Current()
		if err != nil {
			return path
		}
		return filepath.Join(curUser.HomeDir, strings.TrimPrefix(path, "~/"))
	}
	return path
}
