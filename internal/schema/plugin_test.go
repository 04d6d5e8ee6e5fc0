package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type namedPlugin struct{}

func (namedPlugin) ToolName() string   { return "named" }
func (namedPlugin) ToolSchema() Schema { return Schema{} }

func TestDescriptor_ImplementsToolPlugin(t *testing.T) {
	d := Descriptor{
		Name:   "mytool",
		Schema: New(map[string]any{"$id": "https://example.com/mytool.json"}),
	}

	assert.Equal(t, "mytool", d.ToolName())
	assert.Equal(t, "https://example.com/mytool.json", d.ToolSchema().ID())
	assert.Nil(t, d.FormatValidators())
}

func TestIdentity_ValueAndPointerAgree(t *testing.T) {
	value := Identity(namedPlugin{})
	pointer := Identity(&namedPlugin{})

	assert.Equal(t, value, pointer)
	assert.Contains(t, value, "namedPlugin")
	assert.Contains(t, value, "internal/schema")
}

func TestIdentity_Descriptor(t *testing.T) {
	id := Identity(Descriptor{Name: "mytool"})

	assert.Contains(t, id, "Descriptor")
}
