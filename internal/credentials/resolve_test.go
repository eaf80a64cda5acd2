package credentials_test

import (
	"bytes"
	"strings"
	"testing"

	"recpub/internal/console"
	"recpub/internal/credentials"
)

type memoryStore struct {
	values map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (m *memoryStore) Get(service, key string) (string, error) {
	value, ok := m.values[service+"/"+key]
	if !ok {
		return "", credentials.ErrNotFound
	}
	return value, nil
}

func (m *memoryStore) Set(service, key, value string) error {
	m.values[service+"/"+key] = value
	return nil
}

func TestZoomLoginReadsStoredValuesWithoutPrompting(t *testing.T) {
	store := newMemoryStore()
	if err := store.Set(credentials.Service, "zoom_email", "user@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(credentials.Service, "zoom_password", "secret"); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	reporter := console.NewTerminal(&out, strings.NewReader(""))

	email, password, err := credentials.ZoomLogin(store, reporter)
	if err != nil {
		t.Fatalf("ZoomLogin error: %v", err)
	}
	if email != "user@example.com" || password != "secret" {
		t.Fatalf("unexpected credentials: %q / %q", email, password)
	}
	if strings.Contains(out.String(), "credentials not found") {
		t.Fatal("unexpected prompt for stored credentials")
	}
}

func TestZoomLoginPromptsAndPersistsMissingValues(t *testing.T) {
	store := newMemoryStore()
	var out bytes.Buffer
	reporter := console.NewTerminal(&out, strings.NewReader("user@example.com\nhunter2\n"))

	email, password, err := credentials.ZoomLogin(store, reporter)
	if err != nil {
		t.Fatalf("ZoomLogin error: %v", err)
	}
	if email != "user@example.com" || password != "hunter2" {
		t.Fatalf("unexpected credentials: %q / %q", email, password)
	}

	if got, _ := store.Get(credentials.Service, "zoom_email"); got != "user@example.com" {
		t.Fatalf("email not persisted, got %q", got)
	}
	if got, _ := store.Get(credentials.Service, "zoom_password"); got != "hunter2" {
		t.Fatalf("password not persisted, got %q", got)
	}
}

func TestZoomLoginRejectsEmptyEmail(t *testing.T) {
	store := newMemoryStore()
	var out bytes.Buffer
	reporter := console.NewTerminal(&out, strings.NewReader("\n"))

	if _, _, err := credentials.ZoomLogin(store, reporter); err == nil {
		t.Fatal("expected error for empty email")
	}
}
