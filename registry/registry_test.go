package registry

import (
	"testing"

	"github.com/kestrelapi/oas32/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndResolveOpenAPI(t *testing.T) {
	r := New()
	def := &ir.Definition{OpenAPI: "3.2.0"}
	require.NoError(t, r.RegisterOpenAPI("file:///a.yaml", def))

	got, ok := r.ResolveOpenAPI("file:///a.yaml")
	require.True(t, ok)
	assert.Same(t, def, got)

	_, ok = r.ResolveOpenAPI("file:///missing.yaml")
	assert.False(t, ok)
}

func TestRegisterOpenAPIRejectsEmptyOrNil(t *testing.T) {
	r := New()
	assert.Error(t, r.RegisterOpenAPI("", &ir.Definition{}))
	assert.Error(t, r.RegisterOpenAPI("file:///a.yaml", nil))
}

func TestPathItemResolverLocalAndRemote(t *testing.T) {
	r := New()
	local := &ir.Definition{
		Components: &ir.Components{
			PathItems: map[string]*ir.PathItem{
				"Pet": {Summary: "local pet"},
			},
		},
	}
	remote := &ir.Definition{
		Components: &ir.Components{
			PathItems: map[string]*ir.PathItem{
				"Pet": {Summary: "remote pet"},
			},
		},
	}
	require.NoError(t, r.RegisterOpenAPI("file:///remote.yaml", remote))

	pr := r.NewPathItemResolver(local)
	pi, ok := pr.Resolve("", "Pet")
	require.True(t, ok)
	assert.Equal(t, "local pet", pi.Summary)

	pi, ok = pr.Resolve("file:///remote.yaml", "Pet")
	require.True(t, ok)
	assert.Equal(t, "remote pet", pi.Summary)

	_, ok = pr.Resolve("file:///unregistered.yaml", "Pet")
	assert.False(t, ok)
}

func TestRegistryLen(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Len())
	require.NoError(t, r.RegisterOpenAPI("a", &ir.Definition{}))
	require.NoError(t, r.RegisterOpenAPI("b", &ir.Definition{}))
	assert.Equal(t, 2, r.Len())
}
