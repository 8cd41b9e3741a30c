package config

import (
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgConfigPath    = "config.path"
	cfgConfigEnvFile = "config.env_file"

	defaultEnvFile = ".env"
)

// ConfigFile loads the optional configuration file and the dotenv
// file before any other section is configured
type ConfigFile struct {
	Path    string
	EnvFile string
}

func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(cfgConfigPath, "", "sets the configuration file")
	cmd.PersistentFlags().String(cfgConfigEnvFile, defaultEnvFile,
		"dotenv file whose variables are exported when not already set")
	return nil
}

func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.EnvFile = v.GetString(cfgConfigEnvFile)
	if err := LoadEnvFile(f.EnvFile, f.EnvFile != defaultEnvFile); err != nil {
		return err
	}

	f.Path = v.GetString(cfgConfigPath)
	if len(f.Path) == 0 {
		return nil
	}

	ext := strings.TrimPrefix(path.Ext(f.Path), ".")
	if ext != "toml" && ext != "yaml" {
		return ErrInvalidValue{Key: cfgConfigPath, InvalidValue: f.Path, Values: []string{"*.toml", "*.yaml"}}
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return errors.Wrap(err, "failed to open config file")
	}

	defer func() { _ = file.Close() }()
	v.SetConfigType(ext)
	if err := v.ReadConfig(file); err != nil {
		return errors.Wrap(err, "failed to read config file")
	}

	return nil
}

// LoadEnvFile exports the variables in the dotenv file at p into the
// process environment. Variables that are already set are left as they
// are. A missing file is only an error when required is set
func LoadEnvFile(p string, required bool) error {
	if len(p) == 0 {
		return nil
	}

	file, err := os.Open(p)
	if os.IsNotExist(err) && !required {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to open env file")
	}

	defer func() { _ = file.Close() }()
	env := viper.New()
	env.SetConfigType("env")
	if err := env.ReadConfig(file); err != nil {
		return errors.Wrap(err, "failed to read env file")
	}

	for _, key := range env.AllKeys() {
		name := strings.ToUpper(key)
		if _, ok := os.LookupEnv(name); ok {
			continue
		}

		if err := os.Setenv(name, env.GetString(key)); err != nil {
			return errors.Wrapf(err, "failed to export %s", name)
		}
	}

	return nil
}
