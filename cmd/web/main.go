package main

import (
	"fmt"
	"net"
	"os"
	"os/user"

	"github.com/ga-tools/ga-lens/pkg/server"
	"github.com/ga-tools/ga-lens/pkg/services/analytics"
	"github.com/ga-tools/ga-lens/pkg/services/config"
	"github.com/ga-tools/ga-lens/pkg/services/dashboard"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	settingsPath    string
	credentialsPath string
	profile         string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the analytics dashboard web server",
		RunE:  runServer,
	}

	defaultCreds := ".galens"
	if usr, err := user.Current(); err == nil {
		defaultCreds = fmt.Sprintf("%s/.galens", usr.HomeDir)
	}

	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "galens.yaml",
		"Path to the settings file")
	rootCmd.Flags().StringVarP(&credentialsPath, "credentials", "c", defaultCreds,
		"Path to the credentials file (default is $HOME/.galens)")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "default",
		"Credentials profile to use")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var accessToken string
	if creds, err := config.LoadCredentials(credentialsPath, profile); err == nil {
		accessToken = creds.AccessToken
	} else {
		logger.Warn().Err(err).Msg("no credentials profile, falling back to default credentials")
	}

	httpClient, err := analytics.NewAuthenticatedClient(ctx, accessToken, settings.Scopes)
	if err != nil {
		return fmt.Errorf("failed to build authenticated client: %w", err)
	}

	client := analytics.NewClient(httpClient, settings.Endpoint)
	fetcher := analytics.NewFetcher(client,
		analytics.NewExclusionFilter(settings.Exclude.Field, settings.Exclude.Value))
	ctrl := dashboard.NewController(fetcher, settings.Catalog())

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", settingsPath)
	logger.Info().Msgf("Found the following properties:")
	for _, p := range ctrl.Properties() {
		logger.Info().Msgf("ID: `%s`, Name: `%s`", p.ID, p.Name)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Dashboard: ctrl,
		},
	})

	return webAPI.Start()
}
