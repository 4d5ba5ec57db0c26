package options

import (
	"github.com/spf13/pflag"

	"github.com/GBA-BI/drs-client/internal/application"
	"github.com/GBA-BI/drs-client/internal/infra/repo"
	"github.com/GBA-BI/drs-client/pkg/drs"
	"github.com/GBA-BI/drs-client/pkg/log"
	"github.com/GBA-BI/drs-client/pkg/viper"
)

type Options struct {
	Log    *log.Config
	Client *drs.Config
	App    *application.Config
	Repo   *repo.Config
}

func NewOptions() *Options {
	return &Options{
		Log:    log.NewConfig(),
		Client: drs.NewConfig(),
		App:    application.NewConfig(),
		Repo:   repo.NewConfig(),
	}
}

// Validate checks the options every subcommand needs. Fetch-only options are
// validated by ValidateFetch.
func (o *Options) Validate() error {
	if err := o.Log.Validate(); err != nil {
		return err
	}
	if err := o.Client.Validate(); err != nil {
		return err
	}
	return nil
}

func (o *Options) ValidateFetch() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.App.Validate(); err != nil {
		return err
	}
	if err := o.Repo.Validate(); err != nil {
		return err
	}
	return nil
}

// AddFlags registers the flags shared by all subcommands.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.Log.AddFlags(fs)
	o.Client.AddFlags(fs)
}

// AddFetchFlags registers the flags of the fetch subcommand.
func (o *Options) AddFetchFlags(fs *pflag.FlagSet) {
	o.App.AddFlags(fs)
	o.Repo.AddFlags(fs)
}

func NewFromENV() *Options {
	opt := NewOptions()
	viper.SetConfigFromEnv(opt)
	return opt
}
