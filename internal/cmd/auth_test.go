package cmd

import (
	"context"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapphire-forecast/sapphire-cli/internal/config"
)

// memKeyring is an in-memory keyring so auth tests never touch the real
// system keychain.
type memKeyring struct {
	items map[string]keyring.Item
}

func (m *memKeyring) Get(key string) (keyring.Item, error) {
	item, ok := m.items[key]
	if !ok {
		return keyring.Item{}, keyring.ErrKeyNotFound
	}
	return item, nil
}

func (m *memKeyring) GetMetadata(key string) (keyring.Metadata, error) {
	return keyring.Metadata{}, nil
}

func (m *memKeyring) Set(item keyring.Item) error {
	m.items[item.Key] = item
	return nil
}

func (m *memKeyring) Remove(key string) error {
	if _, ok := m.items[key]; !ok {
		return keyring.ErrKeyNotFound
	}
	delete(m.items, key)
	return nil
}

func (m *memKeyring) Keys() ([]string, error) {
	return nil, nil
}

func useMemKeyring(t *testing.T) {
	t.Helper()
	mock := &memKeyring{items: map[string]keyring.Item{}}
	restore := config.SetOpenKeyring(func(cfg keyring.Config) (keyring.Keyring, error) {
		return mock, nil
	})
	t.Cleanup(restore)
	// Environment credentials would shadow the keyring.
	t.Setenv("SAPPHIRE_API_URL", "")
	t.Setenv("SAPPHIRE_API_TOKEN", "")
}

func TestAuthLoginAndStatus(t *testing.T) {
	useMemKeyring(t)

	loginOut := captureStdout(t, func() {
		err := Execute(context.Background(), []string{
			"auth", "login", "--url", "https://fc.example.org", "--api-token", "secret-token",
		})
		require.NoError(t, err)
	})
	assert.Contains(t, loginOut, "Credentials saved for https://fc.example.org")

	statusOut := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"auth", "status"})
		require.NoError(t, err)
	})
	assert.Contains(t, statusOut, "URL: https://fc.example.org")
	assert.Contains(t, statusOut, "Token: set")
	assert.NotContains(t, statusOut, "secret-token")
}

func TestAuthLogin_InvalidURL(t *testing.T) {
	useMemKeyring(t)

	err := Execute(context.Background(), []string{"auth", "login", "--url", "not-a-url"})
	require.Error(t, err)
	assert.Equal(t, exitUsage, ExitCode(err))
}

func TestAuthLogout(t *testing.T) {
	useMemKeyring(t)

	require.NoError(t, Execute(context.Background(), []string{
		"auth", "login", "--url", "https://fc.example.org",
	}))
	_ = captureStdout(t, func() {
		require.NoError(t, Execute(context.Background(), []string{"auth", "logout"}))
	})

	statusOut := captureStdout(t, func() {
		require.NoError(t, Execute(context.Background(), []string{"auth", "status"}))
	})
	assert.Contains(t, statusOut, "Not configured")
}

func TestCommandsRequireConfiguration(t *testing.T) {
	useMemKeyring(t)

	err := Execute(context.Background(), []string{"runoff", "list"})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNotConfigured)
	assert.Equal(t, exitAuth, ExitCode(err))
}
