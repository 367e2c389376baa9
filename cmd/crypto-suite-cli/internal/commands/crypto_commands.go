package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"

	"github.com/spf13/cobra"
)

// CryptoCommandHandler encapsulates encrypt, decrypt, sign and verify via CLI
type CryptoCommandHandler struct {
	holder *suiteHolder
}

type fileOperation struct {
	algorithm keys.Algorithm
	key       keys.KeyModel
	input     []byte
	inputPath string
}

func (commandHandler *CryptoCommandHandler) prepare(cmd *cobra.Command) (*fileOperation, error) {
	suite := commandHandler.holder.suite
	algorithm, err := algorithmFlag(cmd)
	if err != nil {
		return nil, err
	}
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return nil, fmt.Errorf("invalid key-file flag: %w", err)
	}
	inputPath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return nil, fmt.Errorf("invalid input-file flag: %w", err)
	}

	key, err := suite.CryptoKeyService.LoadFromFile(algorithm, keyFile)
	if err != nil {
		return nil, err
	}
	input, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	return &fileOperation{algorithm: algorithm, key: key, input: input, inputPath: inputPath}, nil
}

// writeOutput writes data to the output-file flag, or next to the input under a fresh uuid name
func writeOutput(cmd *cobra.Command, op *fileOperation, data []byte, ext string) (string, error) {
	outputPath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return "", fmt.Errorf("invalid output-file flag: %w", err)
	}
	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(op.inputPath), uuid.New().String()+ext)
	}

	if err := os.WriteFile(outputPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), outputPath)
	return outputPath, err
}

// EncryptCmd encrypts the input file with an AES or RSA key file
func (commandHandler *CryptoCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	op, err := commandHandler.prepare(cmd)
	if err != nil {
		return err
	}
	ciphertext, err := commandHandler.holder.suite.CryptoService.Encrypt(op.input, op.algorithm, op.key)
	if err != nil {
		return err
	}
	_, err = writeOutput(cmd, op, ciphertext, ".enc")
	return err
}

// DecryptCmd decrypts the input file with an AES or RSA key file
func (commandHandler *CryptoCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	op, err := commandHandler.prepare(cmd)
	if err != nil {
		return err
	}
	plainText, err := commandHandler.holder.suite.CryptoService.Decrypt(op.input, op.algorithm, op.key)
	if err != nil {
		return err
	}
	_, err = writeOutput(cmd, op, plainText, ".dec")
	return err
}

// SignCmd writes the DER or PKCS#1 v1.5 signature of the input file
func (commandHandler *CryptoCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	op, err := commandHandler.prepare(cmd)
	if err != nil {
		return err
	}
	signature, err := commandHandler.holder.suite.CryptoService.Sign(op.input, op.algorithm, op.key)
	if err != nil {
		return err
	}
	_, err = writeOutput(cmd, op, signature, ".sig")
	return err
}

// VerifyCmd prints whether the signature file matches the input file
func (commandHandler *CryptoCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	op, err := commandHandler.prepare(cmd)
	if err != nil {
		return err
	}
	signatureFile, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		return fmt.Errorf("invalid signature-file flag: %w", err)
	}
	signature, err := os.ReadFile(filepath.Clean(signatureFile))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", signatureFile, err)
	}

	valid, err := commandHandler.holder.suite.CryptoService.Verify(op.input, signature, op.algorithm, op.key)
	if err != nil {
		return err
	}
	commandHandler.holder.suite.Logger.Info("Signature valid: ", valid)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), valid)
	return err
}

func addOperationFlags(cmd *cobra.Command, withOutput bool) {
	cmd.Flags().StringP("algorithm", "a", "", "Algorithm: AES, RSA or ECC")
	cmd.Flags().StringP("key-file", "k", "", "Path to the key file")
	cmd.Flags().StringP("input-file", "i", "", "Path to the input file")
	_ = cmd.MarkFlagRequired("algorithm")
	_ = cmd.MarkFlagRequired("key-file")
	_ = cmd.MarkFlagRequired("input-file")
	if withOutput {
		cmd.Flags().StringP("output-file", "o", "", "Path to the output file, defaults to a uuid name next to the input")
	}
}

// InitCryptoCommands registers the encrypt, decrypt, sign and verify commands
func InitCryptoCommands(rootCmd *cobra.Command, holder *suiteHolder) {
	handler := &CryptoCommandHandler{holder: holder}

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file using AES or RSA",
		RunE:  handler.EncryptCmd,
	}
	addOperationFlags(encryptCmd, true)
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file using AES or RSA",
		RunE:  handler.DecryptCmd,
	}
	addOperationFlags(decryptCmd, true)
	rootCmd.AddCommand(decryptCmd)

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a file using RSA or ECC",
		RunE:  handler.SignCmd,
	}
	addOperationFlags(signCmd, true)
	rootCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a file signature using RSA or ECC",
		RunE:  handler.VerifyCmd,
	}
	addOperationFlags(verifyCmd, false)
	verifyCmd.Flags().StringP("signature-file", "s", "", "Path to the signature file")
	_ = verifyCmd.MarkFlagRequired("signature-file")
	rootCmd.AddCommand(verifyCmd)
}
