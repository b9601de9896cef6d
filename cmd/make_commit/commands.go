package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/colorfulnotion/commitreveal/commiterrors"
	"github.com/colorfulnotion/commitreveal/commitment"
	"github.com/colorfulnotion/commitreveal/common"
	"github.com/colorfulnotion/commitreveal/config"
	"github.com/colorfulnotion/commitreveal/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	configFile   string
	envFile      string
	accountID    string
	choice       string
	devAccount   int
	logLevel     string
	logJSON      bool
	debugModules string
}

// newRootCmd wires the command tree. entropy overrides crypto/rand when set.
func newRootCmd(entropy io.Reader) *cobra.Command {
	var (
		flags   globalFlags
		asJSON  bool
		nonceIn string
		commit  string
		check   bool
	)

	resolve := func(cmd *cobra.Command) (*config.Config, error) {
		level := flags.logLevel
		// --debug without an explicit --log-level would otherwise be filtered out
		if flags.debugModules != "" && !cmd.Flag("log-level").Changed {
			level = "debug"
		}
		if err := log.InitLoggerTo(cmd.ErrOrStderr(), level, flags.logJSON); err != nil {
			return nil, err
		}
		log.EnableModules(flags.debugModules)
		config.LoadEnv(flags.envFile)

		opts := config.Options{
			ConfigFile: flags.configFile,
			AccountID:  flags.accountID,
			Choice:     flags.choice,
		}
		if cmd.Flag("dev-account").Changed {
			opts.DevAccount = &flags.devAccount
		}
		return config.Resolve(opts)
	}

	var rootCmd = &cobra.Command{
		Use:   "make-commit",
		Short: "Generate a commit-reveal commitment",
		Long: `Generates a fresh 32-byte nonce and prints
keccak256(abi.encode(address account, uint8 choice, bytes32 nonce))
together with the choice and nonce needed for the reveal.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd)
			if err != nil {
				return err
			}
			g := &commitment.Generator{Rand: entropy}
			c, err := g.Generate(cfg.Account, cfg.Choice)
			if err != nil {
				return err
			}
			log.Info(log.CLIMonitoring, "commitment ready", "account", cfg.Account.Hex(), "choice", cfg.Choice.Name())
			return writeCommitment(cmd.OutOrStdout(), c, asJSON)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Print the commitment as JSON")

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Check a revealed choice and nonce against a commit hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd)
			if err != nil {
				return err
			}
			hash, err := common.ParseHash(commit)
			if err != nil {
				return errors.Wrapf(commiterrors.ErrInvalidCommitHash, "%v", err)
			}
			nonce, err := commitment.ParseNonce(nonceIn)
			if err != nil {
				return err
			}
			if err := commitment.CheckReveal(hash, cfg.Account, cfg.Choice, nonce); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid: %s commits %s (choice=%s)\n", cfg.Account.Hex(), cfg.Choice.Name(), cfg.Choice)
			return nil
		},
	}
	verifyCmd.Flags().StringVar(&commit, "commit", "", "Commit hash (0x + 64 hex)")
	verifyCmd.Flags().StringVar(&nonceIn, "nonce", "", "Revealed nonce (0x + 64 hex)")
	_ = verifyCmd.MarkFlagRequired("commit")
	_ = verifyCmd.MarkFlagRequired("nonce")

	var layoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "Show the 96-byte encoding that gets hashed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd)
			if err != nil {
				return err
			}
			var nonce commitment.Nonce
			if nonceIn != "" {
				if nonce, err = commitment.ParseNonce(nonceIn); err != nil {
					return err
				}
			}
			if check {
				if err := commitment.CheckLayout(cfg.Account, cfg.Choice, nonce); err != nil {
					return err
				}
				log.Info(log.CLIMonitoring, "encoding matches abi packer")
			}
			fmt.Fprint(cmd.OutOrStdout(), commitment.RenderLayout(cfg.Account, cfg.Choice, nonce))
			return nil
		},
	}
	layoutCmd.Flags().StringVar(&nonceIn, "nonce", "", "Nonce to encode (default all zero)")
	layoutCmd.Flags().BoolVar(&check, "check", false, "Cross-check against the go-ethereum ABI packer")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			commitHash := Commit
			if commitHash == "none" {
				commitHash = common.GetCommitHash()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "make-commit %s (commit %s, built %s)\n", Version, commitHash, BuildTime)
		},
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "JSON config file with account_id and choice")
	pf.StringVar(&flags.envFile, "env-file", ".env", "Env file to load before reading COMMIT_* variables")
	pf.StringVar(&flags.accountID, "account", "", "Account address (20 bytes hex)")
	pf.StringVar(&flags.choice, "choice", "", "Choice: 0/heads, 1/tails, or any value up to 255")
	pf.IntVar(&flags.devAccount, "dev-account", 0, "Use Hardhat/Anvil dev account N (0-9)")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error, crit)")
	pf.BoolVar(&flags.logJSON, "log-json", false, "Log to stderr as JSON")
	pf.StringVar(&flags.debugModules, "debug", "", "Debug modules to enable (commit_mod,config_mod,cli_mod or all); implies --log-level debug unless set")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func writeCommitment(w io.Writer, c *commitment.Commitment, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}
	_, err := fmt.Fprintln(w, c.Format())
	return err
}
