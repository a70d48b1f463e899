package cmd

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/signrelay/signrelay/api"
	"github.com/signrelay/signrelay/pkg"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the signing relay",
	Long:  `Start the signing relay.`,
	Run: func(cmd *cobra.Command, args []string) {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		appConfig, err := loadConfig(cmd.Flags())
		if err != nil {
			logrus.WithError(err).Fatal("could not load configuration")
		}

		client, err := pkg.NewSigning(appConfig)
		if err != nil {
			// missing or malformed credentials are fatal at startup
			logrus.WithError(err).Fatal("could not configure signing service")
		}

		server := api.New(api.Config{
			Address:     appConfig.Address,
			PublicDir:   appConfig.PublicDir,
			EnableCORS:  appConfig.EnableCORS,
			LogRequests: appConfig.LogRequests,
			Logger:      logrus.StandardLogger(),
		}, client)

		go func() {
			if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.WithError(err).Fatal("http server stopped")
			}
		}()

		<-stop
		if err := server.Shutdown(); err != nil {
			logrus.WithError(err).Error("shutdown failed")
		}
	},
}

// loadConfig assembles the immutable process configuration: .env file (if
// present), environment variables, then command line flags.
func loadConfig(flags *pflag.FlagSet) (pkg.Config, error) {
	// the .env file is optional
	_ = godotenv.Load()

	config := pkg.Config{}
	if err := env.Parse(&config); err != nil {
		return pkg.Config{}, err
	}

	if address, err := flags.GetString(confAddress); err == nil && address != "" {
		config.Address = address
	}
	return config, nil
}

const confAddress = "address"

func flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flags.StringP(confAddress, "a", "", "address the http server binds to, overrides SIGNRELAY_ADDRESS")
	return flags
}

func init() {
	serveCmd.Flags().AddFlagSet(flagSet())
	rootCmd.AddCommand(serveCmd)
}
