package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/KotFed0t/quotes_sheet_sync/config"
	"github.com/KotFed0t/quotes_sheet_sync/internal/auth"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi/moexApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/externalApi/tcbsApi"
	"github.com/KotFed0t/quotes_sheet_sync/internal/reportGenerator/xslsxGenerator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuoteSource(t *testing.T) {
	cfg := &config.Config{}

	cfg.API.Provider = "tcbs"
	src, err := newQuoteSource(cfg)
	require.NoError(t, err)
	assert.IsType(t, &tcbsApi.TcbsApi{}, src)

	cfg.API.Provider = "moex"
	src, err = newQuoteSource(cfg)
	require.NoError(t, err)
	assert.IsType(t, &moexApi.MoexApi{}, src)

	cfg.API.Provider = "polygon"
	_, err = newQuoteSource(cfg)
	assert.Error(t, err, "polygon needs an api key")

	cfg.API.Provider = "yahoo"
	_, err = newQuoteSource(cfg)
	assert.Error(t, err)
}

func TestNewWriterFactory_Xlsx(t *testing.T) {
	cfg := &config.Config{}
	cfg.Sheets.Destination = config.DestinationXlsx
	cfg.Sheets.XlsxPath = filepath.Join(t.TempDir(), "quotes.xlsx")

	writers, cleanup, err := newWriterFactory(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	writer, err := writers(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &xslsxGenerator.XSLSXGenerator{}, writer)
}

func TestNewWriterFactory_SheetsNeedsSpreadsheetID(t *testing.T) {
	cfg := &config.Config{}
	cfg.Sheets.Destination = config.DestinationSheets

	_, _, err := newWriterFactory(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewWriterFactory_SheetsWithoutCredentials(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Sheets.Destination = config.DestinationSheets
	cfg.Sheets.SpreadsheetID = "sheet-id"
	cfg.Auth.TokenStore = config.TokenStoreFile
	cfg.Auth.TokenFile = filepath.Join(dir, "token.json")
	cfg.Auth.CredentialsFile = filepath.Join(dir, "credentials.json")

	writers, cleanup, err := newWriterFactory(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	_, err = writers(context.Background())
	assert.ErrorIs(t, err, auth.ErrCredentialsNotFound)
}
