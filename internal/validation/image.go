// Package validation checks user and orchestrator supplied values before they
// reach the filesystem or the wire.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Repository path component per Docker spec: lowercase alphanumerics with
// single separators (., _, -) between them.
var repoComponentRegex = regexp.MustCompile(`^[a-z0-9]+(?:(?:[._]|__|-+)[a-z0-9]+)*$`)

// Registry host, optionally with a port.
var registryHostRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9.-]*[a-zA-Z0-9])?(?::[0-9]+)?$`)

var tagRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9._-]{0,127}$`)

var digestRegex = regexp.MustCompile(`^sha(256:[a-f0-9]{64}|512:[a-f0-9]{128})$`)

// SplitImageReference splits an image reference into name and tag or digest.
// A reference without either gets the "latest" tag.
func SplitImageReference(imageRef string) (string, string) {
	if idx := strings.Index(imageRef, "@"); idx != -1 {
		return imageRef[:idx], imageRef[idx+1:]
	}

	// A colon before the last slash belongs to a registry port.
	lastSlash := strings.LastIndex(imageRef, "/")
	if idx := strings.LastIndex(imageRef, ":"); idx > lastSlash {
		return imageRef[:idx], imageRef[idx+1:]
	}
	return imageRef, "latest"
}

// ValidateImage reports whether imageRef is a well-formed container image reference.
func ValidateImage(imageRef string) error {
	if strings.TrimSpace(imageRef) == "" {
		return fmt.Errorf("image cannot be empty")
	}

	name, ref := SplitImageReference(imageRef)
	if strings.Contains(imageRef, "@") {
		if !digestRegex.MatchString(ref) {
			return fmt.Errorf("invalid digest %q in image %q", ref, imageRef)
		}
	} else if !tagRegex.MatchString(ref) {
		return fmt.Errorf("invalid tag %q in image %q", ref, imageRef)
	}

	components := strings.Split(name, "/")
	if len(components) > 1 && looksLikeRegistry(components[0]) {
		if !registryHostRegex.MatchString(components[0]) {
			return fmt.Errorf("invalid registry %q in image %q", components[0], imageRef)
		}
		components = components[1:]
	}
	for _, c := range components {
		if !repoComponentRegex.MatchString(c) {
			return fmt.Errorf("invalid repository component %q in image %q", c, imageRef)
		}
	}
	return nil
}

func looksLikeRegistry(component string) bool {
	return strings.ContainsAny(component, ".:") || component == "localhost"
}
