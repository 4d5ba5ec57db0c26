package application

import (
	"github.com/spf13/pflag"

	"github.com/GBA-BI/drs-client/pkg/apperror"
)

type Config struct {
	Path  string   `env:"DRS_FETCH_PATH"`
	Types []string `env:"DRS_FETCH_ACCESS_TYPES"`
}

func NewConfig() *Config {
	return &Config{}
}

func (c *Config) Validate() error {
	if c.Path == "" {
		return apperror.NewInvalidArgumentError("Config.Path", c.Path)
	}
	return nil
}

func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Path, "output", "o", c.Path, "local path to materialize the object at")
	fs.StringSliceVar(&c.Types, "access-types", c.Types, "access method types to try, in order of preference")
}
