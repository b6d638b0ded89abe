package main

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/artem13815/scholarship/pkg/client"
	"github.com/artem13815/scholarship/pkg/favorites"
	"github.com/artem13815/scholarship/pkg/logger"
)

const (
	app = "scholarctl"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "scholarctl finds scholarships that fit a student profile",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	viper.SetEnvPrefix("SCHOLARCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("api-url", client.DefaultBaseURL)
	viper.SetDefault("timeout", 10*time.Second)
	viper.SetDefault("favorites-file", defaultFavoritesFile())

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "a config file (default is scholarctl.yaml in current directory)")
	pf.String("api-url", client.DefaultBaseURL, "base URL of the scholarship API")
	pf.Duration("timeout", 10*time.Second, "HTTP timeout for API calls")
	pf.String("favorites-file", "", "where favorites are stored")
	pf.BoolP("debug", "d", false, "verbose/debug output")
	pf.BoolP("json", "j", false, "json format for logging")

	for _, name := range []string{"api-url", "timeout", "favorites-file", "debug", "json"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			log.Fatalf("binding flag %s: %v", name, err)
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// A missing default config file is fine; a broken or missing explicit one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func defaultFavoritesFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".scholarctl-favorites.json"
	}
	return filepath.Join(dir, app, "favorites.json")
}

func newLogger() *zap.Logger {
	l, err := logger.NewStderr(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

func newClient(l *zap.Logger) *client.Client {
	return client.New(viper.GetString("api-url"), viper.GetDuration("timeout"), client.WithLogger(l))
}

func openFavorites() (*favorites.Store, error) {
	path := viper.GetString("favorites-file")
	if path == "" {
		path = defaultFavoritesFile()
	}
	return favorites.Open(path)
}
