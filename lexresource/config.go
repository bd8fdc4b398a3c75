package lexresource

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	lexmodel "github.com/aws/aws-sdk-go-v2/service/lexmodelbuildingservice"
)

// Config is read from the environment once per cold start. AWS
// credentials and region come from the SDK's own environment handling.
type Config struct {
	// LogLevel is parsed from LOG_LEVEL (debug, info, warn, error).
	LogLevel slog.Level
	// EndpointURL overrides the Lex model building endpoint when
	// LEX_ENDPOINT_URL is set.
	EndpointURL string
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{
		LogLevel:    slog.LevelInfo,
		EndpointURL: os.Getenv("LEX_ENDPOINT_URL"),
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}

// NewLogger returns a JSON logger at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

// NewClient loads the default AWS configuration and builds a Lex model
// building client.
func (c Config) NewClient(ctx context.Context) (*lexmodel.Client, error) {
	awscfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return lexmodel.NewFromConfig(awscfg, func(o *lexmodel.Options) {
		if c.EndpointURL != "" {
			o.BaseEndpoint = aws.String(c.EndpointURL)
		}
	}), nil
}

// New builds the resource for kind ("bot", "intent" or "slot-type") on
// client.
func New(kind string, client *lexmodel.Client, logger *slog.Logger) (*Resource, error) {
	switch kind {
	case "bot":
		return NewBot(client, logger), nil
	case "intent":
		return NewIntent(client, logger), nil
	case "slot-type":
		return NewSlotType(client, logger), nil
	}
	return nil, fmt.Errorf("unknown resource kind %q, must be bot, intent or slot-type", kind)
}
