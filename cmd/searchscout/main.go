// cmd/searchscout/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"searchscout/internal/api"
	"searchscout/internal/books"
	booksintent "searchscout/internal/books/intent"
	bookssearch "searchscout/internal/books/search"
	"searchscout/internal/clients/googlebooks"
	"searchscout/internal/clients/gourmetapi"
	"searchscout/internal/clients/ollama"
	"searchscout/internal/clients/openbd"
	"searchscout/internal/clients/rakuten"
	"searchscout/internal/common/cache"
	"searchscout/internal/common/config"
	"searchscout/internal/common/logger"
	"searchscout/internal/common/observability"
	"searchscout/internal/gourmet"
	gourmetintent "searchscout/internal/gourmet/intent"
	gourmetsearch "searchscout/internal/gourmet/search"
	"searchscout/internal/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting searchscout",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// Cache is optional: a nil client disables caching but never blocks
	// startup.
	var redisClient *cache.RedisClient
	if client, err := cache.NewRedis(cfg.Cache.Redis); err != nil {
		zapLog.Warn("Redis unavailable, running without cache", zap.Error(err))
	} else if err := client.Ping(ctx); err != nil {
		zapLog.Warn("Redis ping failed, running without cache", zap.Error(err))
	} else {
		redisClient = client
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")
	}

	ollamaClient := ollama.NewClient(ollama.Config{
		BaseURL:     cfg.APIs.Interpreter.BaseURL,
		Model:       cfg.APIs.Interpreter.Model,
		Timeout:     config.GetDuration(cfg.APIs.Interpreter.Timeout),
		Temperature: cfg.APIs.Interpreter.Temperature,
		MaxTokens:   cfg.APIs.Interpreter.MaxTokens,
	}, obs, log)

	booksClient := googlebooks.NewClient(googlebooks.Config{
		BaseURL: cfg.APIs.BookSearch.BaseURL,
		APIKey:  cfg.APIs.BookSearch.APIKey,
		Timeout: config.GetDuration(cfg.APIs.BookSearch.Timeout),
	}, obs, log)

	catalogClient := openbd.NewClient(openbd.Config{
		BaseURL: cfg.APIs.BookCatalog.BaseURL,
		Timeout: config.GetDuration(cfg.APIs.BookCatalog.Timeout),
	}, obs, log)

	gourmetClient := gourmetapi.NewClient(gourmetapi.Config{
		BaseURL: cfg.APIs.Gourmet.BaseURL,
		APIKey:  cfg.APIs.Gourmet.APIKey,
		Timeout: config.GetDuration(cfg.APIs.Gourmet.Timeout),
	}, obs, log)

	rakutenClient := rakuten.NewClient(rakuten.Config{
		BaseURL:       cfg.APIs.Rakuten.BaseURL,
		ApplicationID: cfg.APIs.Rakuten.ApplicationID,
		Timeout:       config.GetDuration(cfg.APIs.Rakuten.Timeout),
	}, obs, log)

	bookInterpreter, err := booksintent.NewInterpreter(ollamaClient, log)
	if err != nil {
		zapLog.Fatal("book interpreter init failed", zap.Error(err))
	}
	bookService := books.NewService(
		booksintent.NewExtractor(log),
		bookInterpreter,
		bookssearch.NewAggregator(booksClient, catalogClient, redisClient, bookssearch.Config{
			MaxCandidates:        cfg.Search.MaxBookCandidates,
			AccumulateThreshold:  cfg.Search.AccumulateThreshold,
			SecondaryThreshold:   cfg.Search.BookPaddingThreshold,
			MaxConcurrentLookups: cfg.Search.MaxConcurrentLookups,
			CacheTTL:             config.GetDuration(cfg.Cache.TTLSeconds * 1000),
		}, log),
		bookssearch.NewPadder(log),
		catalogClient,
		books.Config{
			PaddingThreshold: cfg.Search.BookPaddingThreshold,
			MaxCandidates:    cfg.Search.MaxBookCandidates,
		},
		log,
	)

	gourmetInterpreter, err := gourmetintent.NewInterpreter(ollamaClient, log)
	if err != nil {
		zapLog.Fatal("gourmet interpreter init failed", zap.Error(err))
	}
	gourmetService := gourmet.NewService(
		gourmetintent.NewExtractor(log),
		gourmetInterpreter,
		gourmetsearch.NewAggregator(gourmetClient, redisClient, gourmetsearch.Config{
			MaxRestaurants: cfg.Search.MaxRestaurants,
			MasterTTL:      config.GetDuration(cfg.Cache.TTLSeconds * 1000),
		}, log),
		gourmetsearch.NewPadder(log),
		gourmet.Config{
			PaddingMinimum: cfg.Search.GourmetPaddingMinimum,
			MaxRestaurants: cfg.Search.MaxRestaurants,
		},
		log,
	)

	handler := api.NewHandler(
		bookService,
		gourmetService,
		pricing.NewBookComparator(rakutenClient, log),
		pricing.NewGourmetComparator(log),
		log,
	)
	router := api.NewRouter(handler, obs)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}
