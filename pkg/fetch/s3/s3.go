package s3

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"golang.org/x/time/rate"

	"github.com/GBA-BI/drs-client/pkg/consts"
	"github.com/GBA-BI/drs-client/pkg/fetch"
	utilspath "github.com/GBA-BI/drs-client/pkg/utils/path"
	"github.com/GBA-BI/drs-client/pkg/viper"
)

type s3Fetcher struct {
	downloader *s3manager.Downloader
}

// NewS3Fetcher builds a fetcher for s3:// access URLs. Credentials come from
// the userinfo part of the access URL when present, from an INI credential
// file, or from the default AWS chain otherwise.
func NewS3Fetcher(cfg *Config, userInfo *url.Userinfo) (fetch.Fetcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil s3 fetcher config")
	}

	maxBandwidth := cfg.MaxBandwidth
	if cfg.MaxBandwidth == 0 {
		maxBandwidth = consts.DefaultMaxBandwidth
	} else if cfg.MaxBandwidth < consts.DefaultMinBandwidth {
		maxBandwidth = consts.DefaultMinBandwidth
	}
	limiter := rate.NewLimiter(rate.Limit(maxBandwidth), int(maxBandwidth))

	// Cap download bandwidth at the transport level.
	httpClient := &http.Client{
		Transport: &rateLimitingTransport{
			limiter:   limiter,
			transport: http.DefaultTransport,
		},
	}

	cre, err := getCre(cfg, userInfo)
	if err != nil {
		return nil, err
	}

	maxRetryCount := consts.DefaultRetryCount
	if cfg.MaxRetryCount > 0 {
		maxRetryCount = int(cfg.MaxRetryCount)
	}
	var partSize int64 = consts.DefaultPartSize
	if cfg.PartSize > 0 {
		partSize = cfg.PartSize
	}
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.Region),
		Endpoint:    aws.String(cfg.Endpoint),
		Credentials: cre,
		MaxRetries:  aws.Int(maxRetryCount),
		HTTPClient:  httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 fetcher: %w", err)
	}

	return &s3Fetcher{
		downloader: s3manager.NewDownloader(sess, func(d *s3manager.Downloader) {
			d.PartSize = partSize
		}),
	}, nil
}

func getCre(cfg *Config, userInfo *url.Userinfo) (*credentials.Credentials, error) {
	if userInfo != nil {
		accessKey := userInfo.Username()
		if secretKey, ok := userInfo.Password(); ok {
			return credentials.NewStaticCredentials(accessKey, secretKey, ""), nil
		}
	}

	if cfg.CredentialFilePath != "" {
		sConfig := &SecretConfig{}
		if err := viper.SetConfigFromFileINI(cfg.CredentialFilePath, "", sConfig); err != nil {
			return nil, err
		}
		return credentials.NewStaticCredentials(sConfig.AccessKey, sConfig.SecretKey, sConfig.CreToken), nil
	}

	// fall back to the default AWS credential chain
	return nil, nil
}

func (t *s3Fetcher) Fetch(ctx context.Context, local, remote string) error {
	basedir := filepath.Dir(local)
	if err := os.MkdirAll(basedir, os.FileMode(consts.DefaultFileMode)); err != nil {
		return fmt.Errorf("failed to mkdir: %w", err)
	}
	if !strings.HasPrefix(remote, consts.S3Prefix) {
		return fmt.Errorf("not an s3 url: %s", remote)
	}
	bucketName, objectName, err := utilspath.ParseURL(remote)
	if err != nil {
		return err
	}

	file, err := os.Create(local)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := t.downloader.DownloadWithContext(ctx, file, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectName),
	}); err != nil {
		return fmt.Errorf("failed to download file from s3: %w", err)
	}
	return nil
}
