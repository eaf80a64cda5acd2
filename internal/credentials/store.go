// Package credentials abstracts the operating system's secret store behind a
// minimal get/set capability so driver code never depends on a specific
// credential backend.
package credentials

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// ErrNotFound reports that no secret is stored under the requested key.
var ErrNotFound = errors.New("credentials: not found")

// Store is the capability surface for persisted secrets.
type Store interface {
	Get(service, key string) (string, error)
	Set(service, key, value string) error
}

// Keyring persists secrets in the operating system credential manager.
type Keyring struct{}

// NewKeyring returns the system-backed credential store.
func NewKeyring() Keyring {
	return Keyring{}
}

func (Keyring) Get(service, key string) (string, error) {
	value, err := keyring.Get(service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read credential %s/%s: %w", service, key, err)
	}
	return value, nil
}

func (Keyring) Set(service, key, value string) error {
	if err := keyring.Set(service, key, value); err != nil {
		return fmt.Errorf("store credential %s/%s: %w", service, key, err)
	}
	return nil
}
