package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UserCredential is a static interactive credential record.
type UserCredential struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// ServiceAccountCredential is a static client-credential record. Service
// accounts live in their own namespace: a client_id may collide with a
// username without conflict.
type ServiceAccountCredential struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	Role         string `yaml:"role"`
}

// Credentials holds the static credential tables. They are loaded once at
// startup and never mutated afterwards.
type Credentials struct {
	Users           []UserCredential           `yaml:"users"`
	ServiceAccounts []ServiceAccountCredential `yaml:"service_accounts"`
}

// LoadCredentialsFile parses the credential tables from a YAML file.
func LoadCredentialsFile(path string) (*Credentials, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("read credentials file %s: %w", path, err)
	}
	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials file %s: %w", path, err)
	}
	if len(creds.Users) == 0 && len(creds.ServiceAccounts) == 0 {
		return nil, fmt.Errorf("credentials file %s defines no users or service accounts", path)
	}
	return &creds, nil
}
