package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.UsersFile, "users.json")
	assert.Equal(t, c.CompaniesFile, "companies.json")
	assert.Equal(t, c.OutputFile, "output.txt")
}

func TestLoadConfig_NoArgsKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, c.UsersFile, "users.json")
	assert.Equal(t, c.CompaniesFile, "companies.json")
	assert.Equal(t, c.OutputFile, "output.txt")
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-u", "u.json", "-p", "c.json", "-o", "report.txt"}

	c := LoadConfig()

	assert.Equal(t, "u.json", c.UsersFile)
	assert.Equal(t, "c.json", c.CompaniesFile)
	assert.Equal(t, "report.txt", c.OutputFile)
}
