package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/babylonlabs-io/wallet-risk-checker/pkg"
	"github.com/spf13/cobra"
)

const (
	defaultConfigFileName = "config.yml"
	configPathEnv         = "WALLET_RISK_CONFIG"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use:   "wallet-risk-checker",
		Short: "Scores IPC and Ethereum wallet addresses through an external prediction service",
	}
)

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := pkg.Getenv(configPathEnv, getDefaultConfigFile(homePath, defaultConfigFileName))

	rootCmd.AddCommand(StartServerCmd())
	rootCmd.AddCommand(RecentChecksCmd())
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))

	return rootCmd.Execute()
}

func getDefaultConfigFile(homePath, filename string) string {
	return filepath.Join(homePath, filename)
}

func GetConfigPath() string {
	return cfgPath
}
