package cli

import (
	"context"
	"encoding/json"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/config"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/db"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/services"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
	"github.com/spf13/cobra"
)

func RecentChecksCmd() *cobra.Command {
	var (
		limit       int64
		pendingOnly bool
	)

	cmd := &cobra.Command{
		Use:   "recent-checks",
		Short: "Prints latest wallet checks as JSON, pending ones are the checks left without a verdict",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRecentChecks(cmd, limit, pendingOnly)
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", db.DefaultRecentChecksLimit, "number of checks to print")
	cmd.Flags().BoolVar(&pendingOnly, "pending-only", false, "print only checks without a verdict")

	return cmd
}

func printRecentChecks(cmd *cobra.Command, limit int64, pendingOnly bool) error {
	ctx := cmd.Context()

	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return err
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		return err
	}
	defer dbClient.Disconnect(context.Background()) //nolint:errcheck

	// the command only reads from the store, other collaborators are not needed
	service := services.NewService(cfg, dbClient, nil, nil, nil)

	var (
		checks []*services.WalletCheckPublic
		svcErr *types.Error
	)
	if pendingOnly {
		checks, svcErr = service.GetPendingChecks(ctx, limit)
	} else {
		checks, svcErr = service.GetRecentChecks(ctx, limit)
	}
	if svcErr != nil {
		return svcErr
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(checks)
}
