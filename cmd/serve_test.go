package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("it reads the environment", func(t *testing.T) {
		t.Setenv("SIGNATURE_PROVIDER", "boldsign")
		t.Setenv("BOLDSIGN_API_KEY", "demo_key")

		config, err := loadConfig(flagSet())
		assert.NoError(t, err)
		assert.Equal(t, "boldsign", config.Provider)
		assert.Equal(t, "demo_key", config.BoldSignAPIKey)
		assert.Equal(t, ":8080", config.Address)
	})

	t.Run("the address flag overrides the environment", func(t *testing.T) {
		t.Setenv("SIGNRELAY_ADDRESS", ":8080")

		flags := flagSet()
		assert.NoError(t, flags.Set(confAddress, ":9999"))

		config, err := loadConfig(flags)
		assert.NoError(t, err)
		assert.Equal(t, ":9999", config.Address)
	})
}
