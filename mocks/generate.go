package mocks

//go:generate mockgen -destination=./mock_quotes_sync.go -package=mocks github.com/KotFed0t/quotes_sheet_sync/internal/service/quotesSyncService QuoteSource,SheetWriter
//go:generate mockgen -destination=./mock_rest.go -package=mocks github.com/KotFed0t/quotes_sheet_sync/internal/transport/rest QuotesSyncService,Notifier
