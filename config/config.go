package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/colorfulnotion/commitreveal/commiterrors"
	"github.com/colorfulnotion/commitreveal/commitment"
	"github.com/colorfulnotion/commitreveal/common"
	"github.com/colorfulnotion/commitreveal/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// DefaultAccountID is used when nothing else names an account.
	DefaultAccountID = "0xD3776b414F5Ec37a1dd2FDD49BBb502b60A516E3"

	EnvAccountID = "COMMIT_ACCOUNT_ID"
	EnvChoice    = "COMMIT_CHOICE"
)

// Config is the resolved input of one commitment.
type Config struct {
	Account common.Address
	Choice  commitment.Choice
}

// File is the on-disk JSON form, e.g. {"account_id": "0x...", "choice": 1}.
// Choice may be a number or "heads"/"tails".
type File struct {
	AccountID string          `json:"account_id,omitempty"`
	Choice    json.RawMessage `json:"choice,omitempty"`
}

// Options carries the command line overrides. Empty strings and a nil
// DevAccount mean "not set", so the zero Options changes nothing.
type Options struct {
	ConfigFile string
	AccountID  string
	Choice     string
	DevAccount *int
}

// LoadEnv reads .env files into the environment. Missing files are ignored and
// existing env vars are not overwritten.
func LoadEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			log.Debug(log.ConfigMonitoring, "no env file loaded", "path", p, "err", err)
		}
	}
}

// Default returns the built-in account and HEADS.
func Default() *Config {
	return &Config{
		Account: common.HexToAddress(DefaultAccountID),
		Choice:  commitment.Heads,
	}
}

// Resolve layers defaults, environment, config file and flags, in that order.
func Resolve(opts Options) (*Config, error) {
	cfg := Default()

	if err := cfg.applyEnv(); err != nil {
		return nil, errors.Wrap(err, "environment")
	}
	if opts.ConfigFile != "" {
		f, err := ReadFile(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err := cfg.applyFile(f); err != nil {
			return nil, errors.Wrapf(err, "config file %s", opts.ConfigFile)
		}
	}
	if err := cfg.applyOptions(opts); err != nil {
		return nil, err
	}

	if !cfg.Choice.IsCoinSide() {
		log.Warn(log.ConfigMonitoring, "choice outside HEADS/TAILS, encoding anyway", "choice", cfg.Choice)
	}
	log.Debug(log.ConfigMonitoring, "config resolved", "account", cfg.Account.Hex(), "choice", cfg.Choice.Name())
	return cfg, nil
}

// ReadFile parses a JSON config file.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return &f, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAccountID); v != "" {
		if err := c.setAccount(v); err != nil {
			return err
		}
	}
	if v := os.Getenv(EnvChoice); v != "" {
		if err := c.setChoice(v); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) applyFile(f *File) error {
	if f.AccountID != "" {
		if err := c.setAccount(f.AccountID); err != nil {
			return err
		}
	}
	if len(f.Choice) > 0 {
		raw := strings.TrimSpace(string(f.Choice))
		if unquoted, err := strconv.Unquote(raw); err == nil {
			raw = unquoted
		}
		if err := c.setChoice(raw); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) applyOptions(opts Options) error {
	if opts.DevAccount != nil {
		idx := *opts.DevAccount
		if idx < 0 || idx > 9 {
			return errors.Wrapf(commiterrors.ErrInvalidDevAccount, "got %d", idx)
		}
		c.Account, _ = common.GetEVMDevAccount(idx)
	}
	if opts.AccountID != "" {
		if err := c.setAccount(opts.AccountID); err != nil {
			return err
		}
	}
	if opts.Choice != "" {
		if err := c.setChoice(opts.Choice); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) setAccount(s string) error {
	addr, err := ParseAccount(s)
	if err != nil {
		return err
	}
	c.Account = addr
	return nil
}

func (c *Config) setChoice(s string) error {
	choice, err := commitment.ParseChoice(s)
	if err != nil {
		return err
	}
	c.Choice = choice
	return nil
}

// ParseAccount validates s as a 20-byte account identifier.
func ParseAccount(s string) (common.Address, error) {
	addr, err := common.ParseAddress(s)
	if err != nil {
		return common.Address{}, errors.Wrapf(commiterrors.ErrInvalidAccount, "%v", err)
	}
	return addr, nil
}
