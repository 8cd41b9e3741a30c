package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for the environment variables that map
// to configuration keys. The key rpc.url can be set with
// SELF_TRANSFER_RPC_URL
const EnvPrefix = "SELF_TRANSFER"

type Config interface {
	Binders() []Binder
}

type Parser struct {
	Config Config

	file *ConfigFile

	cmd *cobra.Command
	v   *viper.Viper
}

// Parse parses the provided arguments and configures all the binders
func (p *Parser) Parse(args []string) error {
	if p.cmd.PersistentFlags().Parsed() {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return p.Usage()
		}
		return ErrParseFlags{err}
	}

	return p.Configure()
}

// Configure reads the values of all the binders once the flags of
// the command have been parsed
func (p *Parser) Configure() error {
	// keep file first so that any parameters read from the file are used
	// as defaults for the other flags
	binders := append([]Binder{p.file}, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

func (p *Parser) Viper() *viper.Viper {
	return p.v
}

func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

// Generate binds the flags of every binder of config to cmd
func Generate(cmd *cobra.Command, config Config) (*Parser, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := ConfigFile{}
	binders := append([]Binder{&file}, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	return &Parser{file: &file, Config: config, cmd: cmd, v: v}, nil
}
