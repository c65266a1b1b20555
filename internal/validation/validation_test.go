package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitImageReference(t *testing.T) {
	tests := []struct {
		imageRef string
		wantName string
		wantRef  string
	}{
		{"nginx", "nginx", "latest"},
		{"nginx:1.27", "nginx", "1.27"},
		{"registry.local:5000/team/api", "registry.local:5000/team/api", "latest"},
		{"registry.local:5000/team/api:v2", "registry.local:5000/team/api", "v2"},
		{"api@sha256:abc", "api", "sha256:abc"},
	}

	for _, tt := range tests {
		t.Run(tt.imageRef, func(t *testing.T) {
			name, ref := SplitImageReference(tt.imageRef)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantRef, ref)
		})
	}
}

func TestValidateImage(t *testing.T) {
	valid := []string{
		"nginx",
		"nginx:1.27-alpine",
		"library/postgres:16",
		"ghcr.io/org/service:main",
		"localhost/app",
		"registry.local:5000/team/api:v2",
		"api@sha256:0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
	}
	for _, ref := range valid {
		assert.NoError(t, ValidateImage(ref), ref)
	}

	invalid := []string{
		"",
		"   ",
		"Nginx",
		"nginx:",
		"nginx:bad tag",
		"api@sha256:short",
		"org//app",
	}
	for _, ref := range invalid {
		assert.Error(t, ValidateImage(ref), ref)
	}
}

func TestCleanRelativePath(t *testing.T) {
	clean, err := CleanRelativePath("services/db/./config")
	require.NoError(t, err)
	assert.Equal(t, "services/db/config", clean)

	for _, p := range []string{"", "/etc/passwd", "..", "../x", "a/../../x", "."} {
		_, err := CleanRelativePath(p)
		assert.Error(t, err, p)
	}
}

func TestJoinWithinRoot(t *testing.T) {
	full, err := JoinWithinRoot("/suite-execution", "services/db/config")
	require.NoError(t, err)
	assert.Equal(t, "/suite-execution/services/db/config", full)

	_, err = JoinWithinRoot("/suite-execution", "../etc/passwd")
	assert.Error(t, err)
}

func TestValidateMountpoint(t *testing.T) {
	assert.NoError(t, ValidateMountpoint("/suite-execution"))
	assert.Error(t, ValidateMountpoint("suite-execution"))
	assert.Error(t, ValidateMountpoint("/"))
}
