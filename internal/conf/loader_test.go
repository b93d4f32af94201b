package conf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Host string `env:"CONF_TEST_HOST" yaml:"host"`
	Port string `env:"CONF_TEST_PORT" yaml:"port"`
}

type validatedConfig struct {
	Host string `env:"CONF_TEST_HOST"`
}

var errBadHost = errors.New("bad host")

func (c *validatedConfig) Validate() error {
	if c.Host == "" {
		return errBadHost
	}
	return nil
}

func TestLoader_Load(t *testing.T) {
	t.Run("rejects a non-pointer target", func(t *testing.T) {
		err := NewLoader().Load(testConfig{})

		var confErr *Error
		require.ErrorAs(t, err, &confErr)
		assert.Equal(t, ErrCodeInvalidType, confErr.Code)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("CONF_TEST_HOST", "envhost")

		cfg := testConfig{Host: "defaulthost", Port: "8080"}
		require.NoError(t, NewLoader().Load(&cfg))

		assert.Equal(t, "envhost", cfg.Host)
		assert.Equal(t, "8080", cfg.Port)
	})

	t.Run("file overlays defaults and environment wins", func(t *testing.T) {
		t.Setenv("CONF_TEST_HOST", "envhost")

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("host: filehost\nport: \"9090\"\n"), 0o600))

		cfg := testConfig{Host: "defaulthost", Port: "8080"}
		require.NoError(t, NewLoader(WithFile(path)).Load(&cfg))

		assert.Equal(t, "envhost", cfg.Host)
		assert.Equal(t, "9090", cfg.Port)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		cfg := testConfig{}
		err := NewLoader(WithFile("/nonexistent/config.yaml")).Load(&cfg)

		var confErr *Error
		require.ErrorAs(t, err, &confErr)
		assert.Equal(t, ErrCodeFileNotFound, confErr.Code)
	})

	t.Run("only-environment skips the file", func(t *testing.T) {
		cfg := testConfig{}
		err := NewLoader(WithFile("/nonexistent/config.yaml"), WithOnlyEnvironment()).Load(&cfg)

		assert.NoError(t, err)
	})

	t.Run("runs validation on validatable targets", func(t *testing.T) {
		cfg := validatedConfig{}
		err := NewLoader().Load(&cfg)

		var confErr *Error
		require.ErrorAs(t, err, &confErr)
		assert.Equal(t, ErrCodeValidation, confErr.Code)
		assert.ErrorIs(t, err, errBadHost)
	})

	t.Run("validation can be skipped", func(t *testing.T) {
		cfg := validatedConfig{}
		assert.NoError(t, NewLoader(WithoutValidation()).Load(&cfg))
	})
}
