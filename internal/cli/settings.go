package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/stcorp/muninn-geoms/internal/config"
	"github.com/stcorp/muninn-geoms/internal/logging"
	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// flagOverrides maps command flags to the config fields they override.
var flagOverrides = []struct {
	flag  string
	field func(*config.Config) *string
}{
	{"reader", func(c *config.Config) *string { return &c.Reader }},
	{"format", func(c *config.Config) *string { return &c.Format }},
	{"log-format", func(c *config.Config) *string { return &c.LogFormat }},
	{"metrics-textfile", func(c *config.Config) *string { return &c.MetricsTextfile }},
}

// loadSettings resolves the effective configuration for cmd and builds its logger.
// Priority (highest to lowest): flags > GEOMS_* environment (.env included) > geoms.yaml > defaults
func loadSettings(cmd *cobra.Command) (*config.Config, geoms.Logger, error) {
	verbose := getVerboseFlag(cmd)

	_ = godotenv.Load()

	dir, err := cmd.Flags().GetString("config")
	if err != nil {
		dir = "."
	}

	cfg, err := config.Load(dir)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil, fmt.Errorf("failed to load %s: %v: %w", config.ConfigFileName, err, geoms.ErrInvalidConfig)
		}
		cfg = config.Default()
	}
	cfg.ApplyEnv(os.LookupEnv)

	for _, o := range flagOverrides {
		f := cmd.Flags().Lookup(o.flag)
		if f == nil || !f.Changed {
			continue
		}
		*o.field(cfg) = f.Value.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := logging.New(cfg.LogFormat, verbose, cmd.ErrOrStderr())
	logger.Verbose("Effective configuration: reader=%s format=%s log_format=%s", cfg.Reader, cfg.Format, cfg.LogFormat)
	return cfg, logger, nil
}
