package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bz888/sentiment/internal/api/server/client"
	"github.com/bz888/sentiment/internal/api/server/handlers"
	"github.com/bz888/sentiment/internal/config"
	"github.com/bz888/sentiment/internal/logger"
)

const shutdownTimeout = 5 * time.Second

var LocalLogger *logger.Logger

func Init() {
	LocalLogger = logger.NewLogger("Server")
}

// Run serves the sentiment API on addr until ctx is cancelled.
func Run(ctx context.Context, addr string) error {
	classifier, err := initializeClassifier()
	if err != nil {
		return err
	}
	return Serve(ctx, addr, NewRouter(handlers.NewHandler(classifier)))
}

// Serve runs handler on addr and shuts it down gracefully once ctx is done.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		LocalLogger.Info("Server started on http://localhost" + addr + "/")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		LocalLogger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func initializeClassifier() (client.Classifier, error) {
	fallback := client.NewKeywordClassifier()

	switch config.Backend {
	case config.BackendOpenAI:
		if config.OpenAIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is required for the openai backend")
		}
		LocalLogger.Info("OpenAI classifier initialized with model", config.OpenAIModel)
		return client.NewOpenAIClassifier(client.OpenAIConfig{
			APIKey: config.OpenAIKey,
			Model:  config.OpenAIModel,
		}), nil
	case config.BackendWatson, "":
		watson, err := client.NewWatsonClient(client.WatsonConfig{
			URL:     config.WatsonURL,
			ModelID: config.WatsonModelID,
		}, fallback)
		if err != nil {
			return nil, err
		}
		LocalLogger.Info("Watson classifier initialized:", watson.GetPredictURL())
		return watson, nil
	default:
		return nil, errors.New("unknown backend: " + config.Backend)
	}
}
