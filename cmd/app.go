package main

import (
	"context"
	"fmt"

	"github.com/KotFed0t/quotes_sheet_sync/config"
	"github.com/KotFed0t/quotes_sheet_sync/data"
	"github.com/KotFed0t/quotes_sheet_sync/data/tokenStore"
	"github.com/KotFed0t/quotes_sheet_sync/internal/auth"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi/googleSheetsApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi/moexApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi/polygonApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi/tcbsApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/model"
	"github.com/KotFed0t/quotes_sheet_sync/internal/notifier/telegramNotifier"
	"github.com/KotFed0t/quotes_sheet_sync/internal/reportGenerator/xslsxGenerator"
	"github.com/KotFed0t/quotes_sheet_sync/internal/service/quotesSyncService"
	"github.com/KotFed0t/quotes_sheet_sync/internal/transport/rest"
	"google.golang.org/api/option"
)

func buildController(ctx context.Context, cfg *config.Config) (*rest.Controller, func(), error) {
	quotes, err := newQuoteSource(cfg)
	if err != nil {
		return nil, nil, err
	}

	writers, cleanup, err := newWriterFactory(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	dest := model.RangeRef{SpreadsheetID: cfg.Sheets.SpreadsheetID, Range: cfg.Sheets.Range}
	srv := quotesSyncService.New(quotes, cfg.Symbols, dest, cfg.Location())

	notifier, err := telegramNotifier.New(cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	if notifier == nil {
		return rest.NewController(srv, writers, nil), cleanup, nil
	}
	return rest.NewController(srv, writers, notifier), cleanup, nil
}

func newQuoteSource(cfg *config.Config) (quotesSyncService.QuoteSource, error) {
	switch cfg.API.Provider {
	case "tcbs":
		return tcbsApi.New(cfg), nil
	case "moex":
		return moexApi.New(cfg), nil
	case "polygon":
		api, err := polygonApi.New(cfg)
		if err != nil {
			return nil, err
		}
		return api, nil
	default:
		return nil, fmt.Errorf("unknown quote provider %q", cfg.API.Provider)
	}
}

func newWriterFactory(ctx context.Context, cfg *config.Config) (rest.WriterFactory, func(), error) {
	switch cfg.Sheets.Destination {
	case config.DestinationXlsx:
		writer := xslsxGenerator.New(cfg.Sheets.XlsxPath)
		return func(context.Context) (quotesSyncService.SheetWriter, error) {
			return writer, nil
		}, func() {}, nil
	case config.DestinationSheets:
		if cfg.Sheets.SpreadsheetID == "" {
			return nil, nil, fmt.Errorf("SPREADSHEET_ID is required for the %s destination", config.DestinationSheets)
		}

		store, cleanup, err := newTokenStore(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}

		authenticator := auth.New(auth.NewCredentialsProvider(cfg), store)

		return func(ctx context.Context) (quotesSyncService.SheetWriter, error) {
			ts, err := authenticator.TokenSource(ctx)
			if err != nil {
				return nil, err
			}
			return googleSheetsApi.New(ctx, option.WithTokenSource(ts))
		}, cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown destination %q", cfg.Sheets.Destination)
	}
}

func newTokenStore(ctx context.Context, cfg *config.Config) (auth.TokenStore, func(), error) {
	switch cfg.Auth.TokenStore {
	case config.TokenStoreFile:
		return tokenStore.NewFileTokenStore(cfg.Auth.TokenFile), func() {}, nil
	case config.TokenStoreRedis:
		redisClient, err := data.NewRedisClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return tokenStore.NewRedisTokenStore(redisClient, cfg.Auth.TokenRedisKey), func() { _ = redisClient.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown token store %q", cfg.Auth.TokenStore)
	}
}
