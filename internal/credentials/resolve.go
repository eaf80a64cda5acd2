package credentials

import (
	"errors"
	"fmt"

	"recpub/internal/console"
)

// Service is the credential-store service name every recpub secret lives under.
const Service = "recpub"

const (
	keyZoomEmail    = "zoom_email"
	keyZoomPassword = "zoom_password"
)

// ZoomLogin resolves the stored Zoom email and password, prompting for and
// persisting any value missing from the store. Prompting happens at most once
// per value; subsequent runs read silently.
func ZoomLogin(store Store, reporter console.Reporter) (email, password string, err error) {
	email, err = lookup(store, keyZoomEmail)
	if err != nil {
		return "", "", err
	}
	password, err = lookup(store, keyZoomPassword)
	if err != nil {
		return "", "", err
	}

	if email != "" && password != "" {
		return email, password, nil
	}

	reporter.Info("Zoom credentials not found. Enter them now (stored in the system credential manager):")
	if email == "" {
		email, err = reporter.Ask("  Zoom email", "")
		if err != nil {
			return "", "", err
		}
		if email == "" {
			return "", "", errors.New("zoom email is required")
		}
		if err := store.Set(Service, keyZoomEmail, email); err != nil {
			return "", "", err
		}
	}
	if password == "" {
		password, err = reporter.AskSecret("  Zoom password")
		if err != nil {
			return "", "", err
		}
		if password == "" {
			return "", "", errors.New("zoom password is required")
		}
		if err := store.Set(Service, keyZoomPassword, password); err != nil {
			return "", "", err
		}
	}
	return email, password, nil
}

func lookup(store Store, key string) (string, error) {
	value, err := store.Get(Service, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}
	return value, nil
}
