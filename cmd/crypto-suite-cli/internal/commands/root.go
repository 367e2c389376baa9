package commands

import (
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	holder := &suiteHolder{}

	rootCmd := &cobra.Command{
		Use:   "crypto-suite-cli",
		Short: "Key generation and cryptographic operations CLI tool",
		Long: `crypto-suite-cli generates AES, RSA and ECC keys and uses them to
encrypt, decrypt, sign and verify files.

Settings are read from the CryptoSuite section of the file given by --config,
else from $` + config.ConfigFileEnvVar + `, else from ` + config.DefaultConfigFile + ` when it exists.`,
		SilenceUsage:      true,
		PersistentPreRunE: holder.init,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a JSON or YAML settings file")
	rootCmd.PersistentFlags().String("log-level", config.LogLevelWarning, "Log level: debug, info, warning, error")

	InitKeyCommands(rootCmd, holder)
	InitCryptoCommands(rootCmd, holder)
	return rootCmd
}
