package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/KotFed0t/quotes_sheet_sync/data/tokenStore"
	"github.com/KotFed0t/quotes_sheet_sync/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

type TokenStore interface {
	Load(ctx context.Context) (*oauth2.Token, error)
	Save(ctx context.Context, tok *oauth2.Token) error
}

type Authenticator struct {
	creds  CredentialsProvider
	store  TokenStore
	scopes []string
}

func New(creds CredentialsProvider, store TokenStore) *Authenticator {
	return &Authenticator{
		creds:  creds,
		store:  store,
		scopes: []string{sheets.SpreadsheetsScope},
	}
}

func (a *Authenticator) oauthConfig(ctx context.Context) (*oauth2.Config, error) {
	b, err := a.creds.Credentials(ctx)
	if err != nil {
		return nil, err
	}

	conf, err := google.ConfigFromJSON(b, a.scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse credentials from %s: %w", a.creds.Source(), err)
	}
	return conf, nil
}

// TokenSource returns a source that refreshes the stored user token when it
// expires and saves every new token back to the store.
func (a *Authenticator) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "Authenticator.TokenSource"

	conf, err := a.oauthConfig(ctx)
	if err != nil {
		slog.Error("failed loading oauth config", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}

	tok, err := a.store.Load(ctx)
	if errors.Is(err, tokenStore.ErrNotFound) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		slog.Error("failed loading token", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, err
	}

	if !tok.Valid() && tok.RefreshToken == "" {
		return nil, ErrTokenExpired
	}

	// the token source outlives the request that created it
	bgCtx := context.WithoutCancel(ctx)

	persisting := &persistingTokenSource{
		ctx:   bgCtx,
		base:  conf.TokenSource(bgCtx, tok),
		store: a.store,
		last:  tok.AccessToken,
	}

	slog.Debug("token source ready", slog.String("rqID", rqID), slog.String("op", op), slog.String("credentials", a.creds.Source()))

	return oauth2.ReuseTokenSource(tok, persisting), nil
}

// Bootstrap runs the consent flow with a loopback redirect and stores the
// resulting token. prompt receives the URL the user has to open.
func (a *Authenticator) Bootstrap(ctx context.Context, prompt func(authURL string)) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "Authenticator.Bootstrap"

	conf, err := a.oauthConfig(ctx)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("listen for oauth redirect: %w", err)
	}

	conf.RedirectURL = fmt.Sprintf("http://%s/", ln.Addr().String())
	state := uuid.NewString()
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}
		if e := q.Get("error"); e != "" {
			http.Error(w, "authorization denied", http.StatusBadRequest)
			select {
			case errCh <- fmt.Errorf("authorization denied: %s", e):
			default:
			}
			return
		}
		_, _ = fmt.Fprintln(w, "Authorization complete, you can close this tab.")
		select {
		case codeCh <- q.Get("code"):
		default:
		}
	})

	srv := &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("oauth redirect server failed", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
	}()
	defer func() {
		_ = srv.Shutdown(context.WithoutCancel(ctx))
	}()

	prompt(conf.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce))

	var code string
	select {
	case code = <-codeCh:
	case err = <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		slog.Error("failed exchanging auth code", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	if err = a.store.Save(ctx, tok); err != nil {
		return err
	}

	slog.Info("oauth token stored", slog.String("rqID", rqID), slog.String("op", op))

	return nil
}

type persistingTokenSource struct {
	ctx   context.Context
	base  oauth2.TokenSource
	store TokenStore

	mu   sync.Mutex
	last string
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if tok.AccessToken != s.last {
		if err := s.store.Save(s.ctx, tok); err != nil {
			slog.Error("failed saving refreshed token", slog.String("op", "persistingTokenSource.Token"), slog.String("err", err.Error()))
		}
		s.last = tok.AccessToken
	}

	return tok, nil
}
