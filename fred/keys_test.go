package fred

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) {
	return "", false
}

func envWith(key string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		if name == EnvKeyName {
			return key, true
		}
		return "", false
	}
}

func writeKeyFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fred_api_key.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestKeySourcePrecedence(t *testing.T) {
	logger := zerolog.Nop()
	keyFile := writeKeyFile(t, "file-key\n")

	tests := []struct {
		name    string
		opts    []Option
		want    KeySource
		wantErr bool
	}{
		{
			name: "explicit key wins over file and env",
			opts: []Option{
				WithAPIKey("explicit-key"),
				WithAPIKeyFile(keyFile),
				WithEnvLookup(envWith("env-key")),
			},
			want: KeySourceExplicit,
		},
		{
			name: "file wins over env",
			opts: []Option{
				WithAPIKeyFile(keyFile),
				WithEnvLookup(envWith("env-key")),
			},
			want: KeySourceFile,
		},
		{
			name: "env is the last resort",
			opts: []Option{
				WithEnvLookup(envWith("env-key")),
			},
			want: KeySourceEnv,
		},
		{
			name:    "no source at all",
			opts:    []Option{WithEnvLookup(noEnv)},
			wantErr: true,
		},
		{
			name:    "empty env value does not count",
			opts:    []Option{WithEnvLookup(envWith(""))},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(logger, tt.opts...)
			require.NoError(t, err)

			source, err := client.KeySource()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMissingAPIKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, source)
		})
	}
}

func TestResolveKey(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("explicit", func(t *testing.T) {
		client, err := NewClient(logger, WithAPIKey("abc123"), WithEnvLookup(noEnv))
		require.NoError(t, err)

		key, err := client.resolveKey()
		require.NoError(t, err)
		assert.Equal(t, "abc123", key)
	})

	t.Run("file first line trimmed", func(t *testing.T) {
		keyFile := writeKeyFile(t, "  abc123  \nsecond line ignored\n")
		client, err := NewClient(logger, WithAPIKeyFile(keyFile), WithEnvLookup(noEnv))
		require.NoError(t, err)

		key, err := client.resolveKey()
		require.NoError(t, err)
		assert.Equal(t, "abc123", key)
	})

	t.Run("env", func(t *testing.T) {
		client, err := NewClient(logger, WithEnvLookup(envWith("env-key")))
		require.NoError(t, err)

		key, err := client.resolveKey()
		require.NoError(t, err)
		assert.Equal(t, "env-key", key)
	})

	t.Run("file removed after setup", func(t *testing.T) {
		keyFile := writeKeyFile(t, "abc123\n")
		client, err := NewClient(logger, WithAPIKeyFile(keyFile), WithEnvLookup(noEnv))
		require.NoError(t, err)

		require.NoError(t, os.Remove(keyFile))
		_, err = client.resolveKey()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrKeyFileNotFound)
	})
}

func TestSetAPIKeyFile(t *testing.T) {
	logger := zerolog.Nop()
	client, err := NewClient(logger, WithEnvLookup(noEnv))
	require.NoError(t, err)

	t.Run("missing path argument", func(t *testing.T) {
		err := client.SetAPIKeyFile("")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("nonexistent file", func(t *testing.T) {
		err := client.SetAPIKeyFile(filepath.Join(t.TempDir(), "nope.txt"))
		assert.ErrorIs(t, err, ErrKeyFileNotFound)
	})

	t.Run("valid file", func(t *testing.T) {
		keyFile := writeKeyFile(t, "abc123\n")
		require.NoError(t, client.SetAPIKeyFile(keyFile))
		assert.Equal(t, keyFile, client.APIKeyFile())
	})
}

func TestNewClientRejectsMissingKeyFile(t *testing.T) {
	_, err := NewClient(zerolog.Nop(), WithAPIKeyFile("/does/not/exist"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrKeyFileNotFound))
}

func TestEnvKeyFound(t *testing.T) {
	logger := zerolog.Nop()

	client, err := NewClient(logger, WithEnvLookup(envWith("env-key")))
	require.NoError(t, err)
	assert.True(t, client.EnvKeyFound())

	client, err = NewClient(logger, WithEnvLookup(noEnv))
	require.NoError(t, err)
	assert.False(t, client.EnvKeyFound())
}

func TestKeySourceString(t *testing.T) {
	assert.Equal(t, "explicit", KeySourceExplicit.String())
	assert.Equal(t, "file", KeySourceFile.String())
	assert.Equal(t, "environment", KeySourceEnv.String())
}
