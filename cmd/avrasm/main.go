// Command avrasm is the AVR (ATmega328) two-pass assembler's CLI: it
// assembles a source file to Intel HEX or raw binary, disassembles a
// previously assembled image, or verifies a source file's round-trip
// through assembly and disassembly.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kalski/avrasm/pkg/alog"
	"github.com/kalski/avrasm/pkg/asm"
	"github.com/kalski/avrasm/pkg/config"
	"github.com/kalski/avrasm/pkg/hexfile"
	"github.com/kalski/avrasm/pkg/inst"
	"github.com/spf13/cobra"
)

// absoluteAddrResolver resolves a decoded branch/jump operand (already an
// absolute "0x..." address, not a label name) straight back to its
// integer value, so a decoded instruction can be re-encoded without
// access to the original symbol table.
type absoluteAddrResolver struct{}

func (absoluteAddrResolver) Resolve(label string) (int, bool) {
	v, err := strconv.ParseInt(strings.TrimPrefix(label, "0x"), 16, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func main() {
	var configPath string
	var verbose bool
	var cfg *config.Config
	var logger *slog.Logger

	rootCmd := &cobra.Command{
		Use:           "avrasm <mode> <input.asm> <output>",
		Short:         "Two-pass assembler for the AVR ATmega328",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadFrom(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			level := alog.LevelFromString(cfg.Logging.Level)
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(alog.NewHandler(os.Stderr, level))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, input, output := args[0], args[1], args[2]
			return runAssemble(logger, cfg, mode, input, output)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "avrasm.toml", "path to a TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	var disasmMode string
	disasmCmd := &cobra.Command{
		Use:           "disasm <input>",
		Short:         "Disassemble a previously assembled image",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisasm(logger, cfg, args[0], disasmMode)
		},
	}
	disasmCmd.Flags().StringVar(&disasmMode, "mode", "", "input format: bin or hex (defaults to the config's default_mode)")
	rootCmd.AddCommand(disasmCmd)

	verifyCmd := &cobra.Command{
		Use:           "verify <input.asm>",
		Short:         "Assemble, disassemble, and check the result round-trips",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(logger, cfg, args[0])
		},
	}
	rootCmd.AddCommand(verifyCmd)

	// Cobra's own error/usage printing is silenced on every command above;
	// this is the single place a failure reaches stderr.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAssemble(logger *slog.Logger, cfg *config.Config, mode, input, output string) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}
	defer f.Close()

	result, err := asm.Assemble(f, cfg.Assembler.FlashSize)
	if err != nil {
		return err
	}
	logger.Debug("assembled", "input", input, "bytes", len(result.Code))

	switch mode {
	case "hex":
		err = hexfile.WriteIntelHex(output, result.Code)
	case "bin":
		err = hexfile.WriteBinary(output, result.Code)
	default:
		return fmt.Errorf("unknown mode %q: want bin or hex", mode)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	logger.Info("wrote output", "path", output, "mode", mode)
	return nil
}

func runDisasm(logger *slog.Logger, cfg *config.Config, input, mode string) error {
	if mode == "" {
		mode = cfg.Assembler.DefaultMode
	}

	code, err := readImage(input, mode)
	if err != nil {
		return err
	}
	logger.Debug("disassembling", "input", input, "mode", mode, "bytes", len(code))

	for pc := 0; pc < len(code); {
		d, err := inst.Decode(code[pc:], pc)
		if err != nil {
			return fmt.Errorf("decode at byte %d: %w", pc, err)
		}
		fmt.Printf("%04x: %s\n", pc, d.String())
		pc += d.Length
	}
	return nil
}

func runVerify(logger *slog.Logger, cfg *config.Config, input string) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}
	defer f.Close()

	result, err := asm.Assemble(f, cfg.Assembler.FlashSize)
	if err != nil {
		return err
	}

	mismatches := 0
	for pc := 0; pc < len(result.Code); {
		d, err := inst.Decode(result.Code[pc:], pc)
		if err != nil {
			return fmt.Errorf("decode at byte %d: %w", pc, err)
		}

		desc, ok := inst.Lookup(d.Mnemonic)
		if !ok {
			return fmt.Errorf("decoded unknown mnemonic %q at byte %d", d.Mnemonic, pc)
		}
		reencoded, err := desc.Encode(d.Operands, pc, absoluteAddrResolver{})
		if err != nil || !bytes.Equal(reencoded, result.Code[pc:pc+d.Length]) {
			logger.Warn("round-trip mismatch", "pc", pc, "mnemonic", d.Mnemonic)
			mismatches++
		}

		logger.Debug("decoded", "pc", pc, "mnemonic", d.Mnemonic)
		pc += d.Length
	}

	if mismatches == 0 {
		fmt.Printf("OK: %d bytes, round-trip verified\n", len(result.Code))
	} else {
		fmt.Printf("FAIL: %d mismatches\n", mismatches)
		return fmt.Errorf("%d round-trip mismatches", mismatches)
	}
	return nil
}

func readImage(path, mode string) ([]byte, error) {
	switch mode {
	case "bin":
		return os.ReadFile(path)
	case "hex":
		return hexfile.ReadIntelHex(path)
	default:
		return nil, fmt.Errorf("unknown mode %q: want bin or hex", mode)
	}
}
