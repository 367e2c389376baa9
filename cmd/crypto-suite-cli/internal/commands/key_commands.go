package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates key generation via CLI
type KeyCommandHandler struct {
	holder *suiteHolder
}

// GenerateKeyCmd generates a key and writes it to the key directory, or prints it with --ephemeral
func (commandHandler *KeyCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) error {
	suite := commandHandler.holder.suite
	algorithm, err := algorithmFlag(cmd)
	if err != nil {
		return err
	}
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		return fmt.Errorf("invalid path flag: %w", err)
	}
	ephemeral, err := cmd.Flags().GetBool("ephemeral")
	if err != nil {
		return fmt.Errorf("invalid ephemeral flag: %w", err)
	}

	if ephemeral {
		model, err := suite.CryptoKeyService.GenerateKeyOnly(algorithm)
		if err != nil {
			return err
		}
		document, err := json.MarshalIndent(model, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", model.ModelName(), err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(document))
		return err
	}

	result, err := suite.CryptoKeyService.GenerateAndSaveKey(cmd.Context(), algorithm, path)
	if err != nil {
		return err
	}
	suite.Logger.Info("Key saved to ", result.KeyFilePath)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return err
}

// InitKeyCommands registers key-related commands
func InitKeyCommands(rootCmd *cobra.Command, holder *suiteHolder) {
	handler := &KeyCommandHandler{holder: holder}

	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate an AES, RSA or ECC key",
		RunE:  handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().StringP("algorithm", "a", "", "Algorithm: AES, RSA or ECC")
	generateKeyCmd.Flags().StringP("path", "p", "", "Key file path, relative paths resolve under the algorithm directory")
	generateKeyCmd.Flags().Bool("ephemeral", false, "Print the key instead of writing it")
	_ = generateKeyCmd.MarkFlagRequired("algorithm")
	rootCmd.AddCommand(generateKeyCmd)
}
