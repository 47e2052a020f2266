// SPDX-License-Identifier: MIT

// Package main is the entry point for the hill binary.
// It provides a CLI for encrypting and decrypting text with the Hill cipher
// and for checking whether a key is invertible modulo 26.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillcipher/codec"
	"github.com/katalvlaran/hillcipher/hill"
	"github.com/katalvlaran/hillcipher/internal/keyfile"
	"github.com/katalvlaran/hillcipher/internal/logging"
	"github.com/katalvlaran/hillcipher/matrix"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// cliConfig holds the parsed global flags.
type cliConfig struct {
	Key       string
	KeyFile   string
	Pad       string
	LogLevel  string
	LogFormat string

	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command and its subcommands.
func newRootCmd() *cobra.Command {
	cfg := &cliConfig{}
	rootCmd := &cobra.Command{
		Use:   "hill",
		Short: "Hill cipher over A-Z modulo 26",
		Long: `Encrypt and decrypt text with an n×n Hill cipher key.

Keys are given as rows separated by ';' and values by ',' (e.g. "3,3;2,5"),
or loaded from a YAML/TOML key file. Text is read from the arguments, or from
stdin when no arguments are given. Non-letters are stripped and case is folded.

Example:
  hill encrypt --key "3,3;2,5" HELLO
  hill decrypt --key "3,3;2,5" HIOZHN
  hill check --key-file key.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg.logger = logging.NewLogger(logging.Config{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				Output: cmd.ErrOrStderr(),
			})
			slog.SetDefault(cfg.logger)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.Key, "key", "k", "", `Key matrix, rows separated by ';' (e.g. "3,3;2,5")`)
	flags.StringVarP(&cfg.KeyFile, "key-file", "f", "", "Path to a YAML or TOML key file")
	flags.StringVarP(&cfg.LogLevel, "log-level", "l", defaultLogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", defaultLogFormat, "Log format (text, json)")
	rootCmd.MarkFlagsMutuallyExclusive("key", "key-file")

	encryptCmd := &cobra.Command{
		Use:   "encrypt [TEXT...]",
		Short: "Encrypt plaintext",
		RunE:  func(cmd *cobra.Command, args []string) error { return runEncrypt(cmd, cfg, args) },
	}
	encryptCmd.Flags().StringVarP(&cfg.Pad, "pad", "p", "", "Pad letter for the last block (default X)")

	rootCmd.AddCommand(
		encryptCmd,
		&cobra.Command{
			Use:   "decrypt [TEXT...]",
			Short: "Decrypt ciphertext",
			RunE:  func(cmd *cobra.Command, args []string) error { return runDecrypt(cmd, cfg, args) },
		},
		&cobra.Command{
			Use:   "check",
			Short: "Report whether the key is invertible modulo 26",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return runCheck(cmd, cfg) },
		},
		&cobra.Command{
			Use:   "inverse",
			Short: "Print the inverse of the key modulo 26",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return runInverse(cmd, cfg) },
		},
	)

	return rootCmd
}

// keySource is the key plus an optional pad letter coming from a key file.
type keySource struct {
	key    *matrix.Dense
	pad    rune
	hasPad bool
}

// loadKey resolves --key or --key-file.
func loadKey(cfg *cliConfig) (*keySource, error) {
	switch {
	case cfg.Key != "":
		key, err := matrix.ParseRows(cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("invalid --key: %w", err)
		}
		return &keySource{key: key}, nil
	case cfg.KeyFile != "":
		f, err := keyfile.Load(cfg.KeyFile)
		if err != nil {
			return nil, err
		}
		key, err := f.Matrix()
		if err != nil {
			return nil, fmt.Errorf("invalid key file %s: %w", cfg.KeyFile, err)
		}
		pad, hasPad, err := f.PadRune()
		if err != nil {
			return nil, fmt.Errorf("invalid key file %s: %w", cfg.KeyFile, err)
		}
		return &keySource{key: key, pad: pad, hasPad: hasPad}, nil
	default:
		return nil, fmt.Errorf("no key given: use --key or --key-file")
	}
}

// readText joins args, or reads all of stdin when there are none.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return string(data), nil
}

// padOption picks --pad over the key file's pad, else the library default.
func padOption(cfg *cliConfig, src *keySource) ([]hill.Option, error) {
	switch {
	case cfg.Pad != "":
		if utf8.RuneCountInString(cfg.Pad) != 1 {
			return nil, fmt.Errorf("--pad must be a single letter, got %q", cfg.Pad)
		}
		r, _ := utf8.DecodeRuneInString(cfg.Pad)
		return []hill.Option{hill.WithPadChar(r)}, nil
	case src.hasPad:
		return []hill.Option{hill.WithPadChar(src.pad)}, nil
	default:
		return nil, nil
	}
}

func runEncrypt(cmd *cobra.Command, cfg *cliConfig, args []string) error {
	src, err := loadKey(cfg)
	if err != nil {
		return err
	}
	opts, err := padOption(cfg, src)
	if err != nil {
		return err
	}
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	if !matrix.IsInvertibleMod(src.key, codec.Modulus) {
		cfg.logger.Warn("key is not invertible mod 26; ciphertext cannot be decrypted", "key", matrix.FormatRows(src.key))
	}

	ct, err := hill.Encrypt(text, src.key, opts...)
	if err != nil {
		return err
	}
	cfg.logger.Debug("encrypted", "n", src.key.Rows(), "letters", len(ct))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), ct)

	return err
}

func runDecrypt(cmd *cobra.Command, cfg *cliConfig, args []string) error {
	src, err := loadKey(cfg)
	if err != nil {
		return err
	}
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	pt, err := hill.Decrypt(text, src.key)
	if err != nil {
		return err
	}
	cfg.logger.Debug("decrypted", "n", src.key.Rows(), "letters", len(pt))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), pt)

	return err
}

func runCheck(cmd *cobra.Command, cfg *cliConfig) error {
	src, err := loadKey(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "key:\n%s\n", src.key)
	if err := hill.ValidateKey(src.key); err != nil {
		fmt.Fprintln(out, "key is NOT invertible mod 26")
		return err
	}
	_, err = fmt.Fprintln(out, "key is invertible mod 26")

	return err
}

func runInverse(cmd *cobra.Command, cfg *cliConfig) error {
	src, err := loadKey(cfg)
	if err != nil {
		return err
	}
	inv, err := matrix.InverseMod(src.key, codec.Modulus)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), matrix.FormatRows(inv))

	return err
}
