package pathlist

import "os"

// DirExists reports whether path names an existing, accessible directory.
// Any stat failure, including a permission error, counts as nonexistent.
// Symlinks are followed.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
