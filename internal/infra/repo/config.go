package repo

import (
	"github.com/spf13/pflag"

	"github.com/GBA-BI/drs-client/pkg/apperror"
	"github.com/GBA-BI/drs-client/pkg/consts"
	fetchfile "github.com/GBA-BI/drs-client/pkg/fetch/file"
	fetchftp "github.com/GBA-BI/drs-client/pkg/fetch/ftp"
	fetchs3 "github.com/GBA-BI/drs-client/pkg/fetch/s3"
)

type Config struct {
	RetryCount uint `env:"FETCH_RETRY_COUNT"`

	S3   *fetchs3.Config
	FTP  *fetchftp.Config
	File *fetchfile.Config
}

func NewConfig() *Config {
	return &Config{
		RetryCount: consts.DefaultRetryCount,
		S3:         &fetchs3.Config{},
		FTP:        &fetchftp.Config{},
		File:       &fetchfile.Config{},
	}
}

func (c *Config) Validate() error {
	if c.S3 == nil || c.FTP == nil || c.File == nil {
		return apperror.NewInvalidArgumentError("Config", "nil fetcher config")
	}
	return nil
}

func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.UintVar(&c.RetryCount, "fetch-retry", c.RetryCount, "max attempts for one byte download")
	fs.StringVar(&c.S3.Endpoint, "s3-endpoint", c.S3.Endpoint, "s3 endpoint for s3 access methods")
	fs.StringVar(&c.S3.Region, "s3-region", c.S3.Region, "s3 region for s3 access methods")
	fs.StringVar(&c.S3.CredentialFilePath, "s3-credential-file", c.S3.CredentialFilePath, "ini file with s3 credentials")
	fs.StringVar(&c.File.BasePath, "file-base-path", c.File.BasePath, "directory file:// access methods are confined to")
}
