package validation

import (
	"fmt"
	"path"
	"strings"
)

// CleanRelativePath normalizes a slash-separated path that must stay below
// some root. It rejects empty, absolute and escaping paths.
func CleanRelativePath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("path %q must be relative", p)
	}

	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("path %q escapes its root", p)
	}
	return clean, nil
}

// ValidateMountpoint reports whether p can be used as a container mountpoint.
func ValidateMountpoint(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("mountpoint %q must be absolute", p)
	}
	if path.Clean(p) == "/" {
		return fmt.Errorf("mountpoint cannot be the filesystem root")
	}
	return nil
}

// JoinWithinRoot joins rel onto root and verifies the result stays within root.
func JoinWithinRoot(root, rel string) (string, error) {
	clean, err := CleanRelativePath(rel)
	if err != nil {
		return "", err
	}

	cleanRoot := path.Clean(root)
	full := path.Join(cleanRoot, clean)
	if cleanRoot != "/" && !strings.HasPrefix(full, cleanRoot+"/") {
		return "", fmt.Errorf("path %q escapes root %q", rel, root)
	}
	return full, nil
}
