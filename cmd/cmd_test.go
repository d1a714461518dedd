package cmd

import (
	"bytes"
	"strings"
	"testing"

	"location-directory/core/directory"
	"location-directory/core/reconcile"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintIDs(t *testing.T) {
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)

	printIDs(c, directory.NewScheme("dir-"), "Illinois", "Springfield")
	assert.Equal(t, "region: dir-illinois\ncity:   dir-illinois-springfield\n", out.String())
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printResult(&out, &reconcile.Result{ID: "loc1", Applied: []reconcile.Action{}}))
	assert.JSONEq(t, `{"id": "loc1", "region": "", "city": "", "applied": []}`, out.String())
}

func TestConfirmMutations(t *testing.T) {
	defer func() { yesConfirm = false }()

	var out bytes.Buffer
	assert.True(t, confirmMutations(strings.NewReader("yes\n"), &out))
	assert.False(t, confirmMutations(strings.NewReader("no\n"), &out))
	assert.False(t, confirmMutations(strings.NewReader(""), &out))

	yesConfirm = true
	assert.True(t, confirmMutations(strings.NewReader(""), &out))
}

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["start"])
	assert.True(t, names["reconcile"])
	assert.True(t, names["directory"])
}
