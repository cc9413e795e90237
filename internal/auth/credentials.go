package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/KotFed0t/quotes_sheet_sync/config"
)

// CredentialsProvider returns the OAuth client secret JSON.
type CredentialsProvider interface {
	Credentials(ctx context.Context) ([]byte, error)
	Source() string
}

type FileCredentials struct {
	Path string
}

func (c FileCredentials) Credentials(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(c.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: file %s does not exist", ErrCredentialsNotFound, c.Path)
	}
	return b, err
}

func (c FileCredentials) Source() string {
	return "file " + c.Path
}

// SecretCredentials holds credentials injected by the host, e.g. from a secret manager.
type SecretCredentials struct {
	Content string
}

func (c SecretCredentials) Credentials(_ context.Context) ([]byte, error) {
	if c.Content == "" {
		return nil, fmt.Errorf("%w: empty secret", ErrCredentialsNotFound)
	}
	return []byte(c.Content), nil
}

func (c SecretCredentials) Source() string {
	return "injected secret"
}

func NewCredentialsProvider(cfg *config.Config) CredentialsProvider {
	if cfg.Auth.CredentialsJSON != "" {
		return SecretCredentials{Content: cfg.Auth.CredentialsJSON}
	}
	return FileCredentials{Path: cfg.Auth.CredentialsFile}
}
