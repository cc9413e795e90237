package tokenStore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"

	"github.com/KotFed0t/quotes_sheet_sync/utils"
	"golang.org/x/oauth2"
)

// FileTokenStore keeps the token as JSON on local disk.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load(ctx context.Context) (*oauth2.Token, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "FileTokenStore.Load"

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		slog.Error("failed reading token file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}

	tok := &oauth2.Token{}
	if err = json.Unmarshal(b, tok); err != nil {
		slog.Error("can't unmarshall token file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}

	return tok, nil
}

func (s *FileTokenStore) Save(ctx context.Context, tok *oauth2.Token) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "FileTokenStore.Save"

	b, err := json.Marshal(tok)
	if err != nil {
		return err
	}

	if err = os.WriteFile(s.path, b, 0o600); err != nil {
		slog.Error("failed writing token file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	slog.Debug("token saved", slog.String("rqID", rqID), slog.String("op", op), slog.String("path", s.path))

	return nil
}
