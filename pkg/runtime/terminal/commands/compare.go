package commands

import (
	"context"
	"fmt"
	"os/user"
	"path/filepath"
	"time"

	"github.com/ga-tools/ga-lens/pkg/models/domain"
	"github.com/ga-tools/ga-lens/pkg/runtime/terminal/export"
	"github.com/ga-tools/ga-lens/pkg/services/analytics"
	"github.com/ga-tools/ga-lens/pkg/services/config"
	"github.com/ga-tools/ga-lens/pkg/services/dashboard"
	"github.com/spf13/cobra"
)

type CompareCmd struct {
	settingsPath    string
	credentialsPath string
	profile         string
	mode            string
	propertyID      string
	propertyIDs     []string
	preset          string
	primaryStart    string
	primaryEnd      string
	comparisonStart string
	comparisonEnd   string
	reporter        *export.Reporter
}

func NewCompareCmd(reporter *export.Reporter) *cobra.Command {
	cc := &CompareCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare analytics metrics across periods or properties",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.settingsPath, "settings", "galens.yaml", "Path to the settings file")
	cmd.Flags().StringVar(&cc.credentialsPath, "credentials", defaultCredentialsPath(), "Path to the credentials file")
	cmd.Flags().StringVar(&cc.profile, "profile", "default", "Credentials profile to use")
	cmd.Flags().StringVar(&cc.mode, "mode", "time", "Comparison mode: time or property")
	cmd.Flags().StringVar(&cc.propertyID, "property", "", "Property ID (time mode)")
	cmd.Flags().StringSliceVar(&cc.propertyIDs, "properties", nil, "Property IDs (property mode)")
	cmd.Flags().StringVar(&cc.preset, "preset", "last7days", "Date range preset")
	cmd.Flags().StringVar(&cc.primaryStart, "start", "", "Custom primary start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&cc.primaryEnd, "end", "", "Custom primary end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&cc.comparisonStart, "comparison-start", "", "Custom comparison start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&cc.comparisonEnd, "comparison-end", "", "Custom comparison end date (YYYY-MM-DD)")

	return cmd
}

func (cc *CompareCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	ctrl, err := buildController(ctx, cc.settingsPath, cc.credentialsPath, cc.profile)
	if err != nil {
		return err
	}

	custom, err := cc.customDates()
	if err != nil {
		return err
	}

	switch cc.mode {
	case string(dashboard.ModeProperty):
		result, err := ctrl.CompareProperties(ctx, dashboard.PropertyRequest{
			PropertyIDs: cc.propertyIDs,
			Preset:      domain.RangePreset(cc.preset),
			Custom:      custom,
		})
		if err != nil {
			return fmt.Errorf("property comparison failed: %w", err)
		}
		return cc.reporter.HandlePropertyComparison(result)
	case string(dashboard.ModeTime):
		result, err := ctrl.CompareTime(ctx, dashboard.TimeRequest{
			PropertyID: cc.propertyID,
			Preset:     domain.RangePreset(cc.preset),
			Custom:     custom,
		})
		if err != nil {
			return fmt.Errorf("time comparison failed: %w", err)
		}
		return cc.reporter.HandleTimeComparison(result)
	default:
		return fmt.Errorf("unknown mode %q, expected time or property", cc.mode)
	}
}

func (cc *CompareCmd) customDates() (*domain.CustomDates, error) {
	if cc.primaryStart == "" && cc.primaryEnd == "" &&
		cc.comparisonStart == "" && cc.comparisonEnd == "" {
		return nil, nil
	}

	custom := &domain.CustomDates{}
	fields := []struct {
		flag  string
		value string
		dst   *time.Time
	}{
		{"start", cc.primaryStart, &custom.PrimaryStart},
		{"end", cc.primaryEnd, &custom.PrimaryEnd},
		{"comparison-start", cc.comparisonStart, &custom.ComparisonStart},
		{"comparison-end", cc.comparisonEnd, &custom.ComparisonEnd},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", f.value)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s value %q, expected YYYY-MM-DD", f.flag, f.value)
		}
		*f.dst = t
	}
	return custom, nil
}

func buildController(ctx context.Context, settingsPath, credentialsPath, profile string) (*dashboard.Controller, error) {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	var accessToken string
	if creds, err := config.LoadCredentials(credentialsPath, profile); err == nil {
		accessToken = creds.AccessToken
	}

	httpClient, err := analytics.NewAuthenticatedClient(ctx, accessToken, settings.Scopes)
	if err != nil {
		return nil, err
	}

	client := analytics.NewClient(httpClient, settings.Endpoint)
	fetcher := analytics.NewFetcher(client,
		analytics.NewExclusionFilter(settings.Exclude.Field, settings.Exclude.Value))

	return dashboard.NewController(fetcher, settings.Catalog()), nil
}

func defaultCredentialsPath() string {
	usr, err := user.Current()
	if err != nil {
		return ".galens"
	}
	return filepath.Join(usr.HomeDir, ".galens")
}
