package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyCommandStructure(t *testing.T) {
	assert.NotNil(t, verifyCmd)
	assert.Equal(t, "verify", verifyCmd.Use)
	assert.NotEmpty(t, verifyCmd.Short)
	assert.NotEmpty(t, verifyCmd.Long)
	assert.NotNil(t, verifyCmd.RunE)
	assert.True(t, verifyCmd.SilenceUsage, "usage noise would corrupt report output")
}

func TestVerifyCommandFlags(t *testing.T) {
	flags := verifyCmd.Flags()

	assert.NotNil(t, flags.Lookup("repo"))
	assert.NotNil(t, flags.Lookup("git"))
	assert.NotNil(t, flags.Lookup("format"))
	assert.NotNil(t, flags.Lookup("show-commits"))
	assert.NotNil(t, flags.Lookup("no-branches"))
}

func TestVerifyIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "verify" {
			found = true
			break
		}
	}
	assert.True(t, found, "verify command should be added to root command")
}

func TestVerifyCommandExample(t *testing.T) {
	assert.Contains(t, verifyCmd.Long, "Example:")
	assert.Contains(t, verifyCmd.Long, "svnaudit verify")
}

func TestErrIncomplete(t *testing.T) {
	assert.EqualError(t, ErrIncomplete, "migration incomplete")
}
