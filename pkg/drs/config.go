package drs

import (
	"github.com/spf13/pflag"

	"github.com/GBA-BI/drs-client/pkg/apperror"
	"github.com/GBA-BI/drs-client/pkg/consts"
)

type Config struct {
	URI      string `env:"DRS_URI"`
	Port     int    `env:"DRS_PORT"`
	BasePath string `env:"DRS_BASE_PATH"`
	Insecure bool   `env:"DRS_INSECURE"`
	Token    string `env:"DRS_TOKEN"`
}

func NewConfig() *Config {
	return &Config{
		BasePath: consts.DefaultBasePath,
	}
}

func (c *Config) Validate() error {
	if c.URI == "" {
		return apperror.NewInvalidArgumentError("Config.URI", c.URI)
	}
	if c.Port < 0 || c.Port > 65535 {
		return apperror.NewInvalidArgumentError("Config.Port", "out of range")
	}
	return nil
}

func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.URI, "uri", c.URI, "base URI or hostname-based DRS URI of the DRS instance")
	fs.IntVar(&c.Port, "port", c.Port, "override the default port of the DRS instance")
	fs.StringVar(&c.BasePath, "base-path", c.BasePath, "override the default base path of the DRS API")
	fs.BoolVar(&c.Insecure, "insecure", c.Insecure, "use http instead of https for drs:// URIs")
	fs.StringVar(&c.Token, "token", c.Token, "bearer token to send along with DRS API requests")
}
