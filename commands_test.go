package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ariebrainware/chiro-directory/config"
	"github.com/stretchr/testify/assert"
)

func runInitDB(t *testing.T) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"initdb"})
	assert.NoError(t, cmd.Execute())
	return out.String()
}

func TestInitDBCommand_SeedsOnce(t *testing.T) {
	t.Setenv("APPENV", "")
	t.Setenv("DBDRIVER", "sqlite")
	t.Setenv("DBPATH", filepath.Join(t.TempDir(), "chiro.db"))
	config.ResetConfigForTest()
	t.Cleanup(config.ResetConfigForTest)

	first := runInitDB(t)
	assert.Contains(t, first, "Store created and seeded")
	assert.Contains(t, first, "Store holds 3 chiropractors.")

	second := runInitDB(t)
	assert.Contains(t, second, "Store already exists")
	assert.Contains(t, second, "Store holds 3 chiropractors.")
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := []string{}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "initdb"}, names)
}

func TestInitDBCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"initdb", "extra"})
	assert.Error(t, cmd.Execute())
}
