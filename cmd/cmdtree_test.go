package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	run := func([]string) {}
	decode := &CmdTree{Name: "decode", Help: "Decode", Fun: run}
	tree := &CmdTree{
		Name: "yapfcp",
		Help: "tools",
		Sub:  []*CmdTree{decode, {}, {Name: "group", Sub: []*CmdTree{{Name: "leaf", Fun: run}}}},
	}

	found, args := tree.Find([]string{"yapfcp", "decode", "-frames", "00"})
	assert.Same(t, decode, found)
	assert.Equal(t, []string{"yapfcp decode", "-frames", "00"}, args)

	found, args = tree.Find([]string{"yapfcp", "group", "leaf"})
	assert.Equal(t, "leaf", found.Name)
	assert.Equal(t, []string{"yapfcp group leaf"}, args)

	found, _ = tree.Find([]string{"yapfcp", "missing"})
	assert.Same(t, tree, found)
	found, _ = tree.Find([]string{"yapfcp"})
	assert.Same(t, tree, found)
}

func TestUsageListing(t *testing.T) {
	tree := &CmdTree{
		Name: "yapfcp",
		Help: "PFCP tools",
		Sub:  []*CmdTree{{Name: "decode", Help: "Decode datagrams"}, {}, {Name: "version", Help: "Print version"}},
	}
	var out bytes.Buffer
	tree.writeUsage(&out, "yapfcp")
	assert.Contains(t, out.String(), "PFCP tools (yapfcp)\n")
	assert.Contains(t, out.String(), "  decode          Decode datagrams\n\n  version")
}
