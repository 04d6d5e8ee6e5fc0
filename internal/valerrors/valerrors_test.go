package valerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("/project/name", "format", "invalid \"project-name\" format")

	assert.Equal(t, "/project/name", err.Path)
	assert.Equal(t, "format", err.Rule)
	assert.Equal(t, "invalid \"project-name\" format", err.Message)
}

func TestValidationError_Error(t *testing.T) {
	err := New("/project/version", "format", "invalid version")

	assert.Equal(t, "`/project/version` invalid version", err.Error())
}

func TestValidationError_Error_RootPath(t *testing.T) {
	err := New("", "type", "expected object")

	assert.Equal(t, "`/` expected object", err.Error())
}
