package conftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
dpdkintel:
  opmode: IPS
  inputs:
    - interface: 0
      copy-interface: 1
    - interface: "2"
      copy-interface: "3"
    - interface: 4
      copy-interface:
runmode:
  detect: true
`

func TestParseAndGet(t *testing.T) {
	root, err := Parse([]byte(sample))
	require.NoError(t, err)

	v, ok := root.GetValue("dpdkintel.opmode")
	assert.True(t, ok)
	assert.Equal(t, "IPS", v)

	inputs := root.Get("dpdkintel.inputs")
	require.NotNil(t, inputs)
	assert.Len(t, inputs.Children, 3)
	assert.Equal(t, "0", inputs.Children[0].Name)

	assert.Nil(t, root.Get("dpdkintel.missing"))
	assert.Nil(t, root.Get("nothing.at.all"))

	_, ok = root.GetValue("dpdkintel.inputs")
	assert.False(t, ok, "a mapping has no scalar value")
}

func TestLookupKeyValue(t *testing.T) {
	root, err := Parse([]byte(sample))
	require.NoError(t, err)
	inputs := root.Get("dpdkintel.inputs")

	n := inputs.LookupKeyValue("interface", "2")
	require.NotNil(t, n)
	out, ok := n.ChildValue("copy-interface")
	assert.True(t, ok)
	assert.Equal(t, "3", out)

	n = inputs.LookupKeyValue("interface", "4")
	require.NotNil(t, n)
	_, ok = n.ChildValue("copy-interface")
	assert.False(t, ok, "null copy-interface counts as missing")

	assert.Nil(t, inputs.LookupKeyValue("interface", "9"))

	var nilNode *Node
	assert.Nil(t, nilNode.LookupKeyValue("interface", "0"))
}

func TestParseEmptyAndInvalid(t *testing.T) {
	root, err := Parse(nil)
	require.NoError(t, err)
	assert.Nil(t, root.Get("dpdkintel"))

	_, err = Parse([]byte("dpdkintel: [unclosed"))
	assert.Error(t, err)
}

func TestAliases(t *testing.T) {
	root, err := Parse([]byte(`
base: &b
  interface: 7
dpdkintel:
  inputs:
    - *b
`))
	require.NoError(t, err)
	assert.NotNil(t, root.Get("dpdkintel.inputs").LookupKeyValue("interface", "7"))
}

func TestAliasCycle(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		path string
	}{
		{"self", "dpdkintel: &x\n  opmode: ips\n  inputs: *x\n", "dpdkintel.inputs.inputs"},
		{"through sequence", "dpdkintel:\n  inputs: &l\n    - interface: \"0\"\n    - *l\n", "dpdkintel.inputs.1.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.path)
			assert.Contains(t, err.Error(), "refers to itself")
		})
	}
}

func TestAliasReusedTwice(t *testing.T) {
	root, err := Parse([]byte("a: &v 1\nb: *v\nc: *v\n"))
	require.NoError(t, err)
	v, _ := root.GetValue("c")
	assert.Equal(t, "1", v)
}
