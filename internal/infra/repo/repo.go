package repo

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/GBA-BI/drs-client/internal/domain"
	"github.com/GBA-BI/drs-client/pkg/checker"
	md5checker "github.com/GBA-BI/drs-client/pkg/checker/md5"
	"github.com/GBA-BI/drs-client/pkg/consts"
	"github.com/GBA-BI/drs-client/pkg/drs"
	"github.com/GBA-BI/drs-client/pkg/fetch"
	fetchfile "github.com/GBA-BI/drs-client/pkg/fetch/file"
	fetchftp "github.com/GBA-BI/drs-client/pkg/fetch/ftp"
	fetchhttp "github.com/GBA-BI/drs-client/pkg/fetch/http"
	fetchs3 "github.com/GBA-BI/drs-client/pkg/fetch/s3"
	"github.com/GBA-BI/drs-client/pkg/log"
	utilsretry "github.com/GBA-BI/drs-client/pkg/utils/retry"
)

type objectRepo struct {
	client *drs.Client
	cfg    *Config
	logger log.Logger
}

func NewObjectRepo(cfg *Config, client *drs.Client, logger log.Logger) (domain.Repository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config of object repo")
	}
	return &objectRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

func (r *objectRepo) Resolve(ctx context.Context, ref *domain.ObjectRef) (*drs.DrsObject, error) {
	return r.client.GetObject(ctx, ref.URI, ref.Token)
}

// Materialize resolves the object, walks its access methods in the ref's
// preference order, downloads through the first usable one and verifies size
// and checksum of the result.
func (r *objectRepo) Materialize(ctx context.Context, ref *domain.ObjectRef) error {
	object, err := r.Resolve(ctx, ref)
	if err != nil {
		return err
	}
	if len(object.AccessMethods) == 0 {
		return fmt.Errorf("no access_methods in object %s", object.ID)
	}

	if err := r.pickAvailableFetcherAndDownload(ctx, object, ref); err != nil {
		return err
	}

	return r.verify(object, ref.Path)
}

func (r *objectRepo) pickAvailableFetcherAndDownload(ctx context.Context, object *drs.DrsObject, ref *domain.ObjectRef) error {
	for _, accessType := range ref.AccessTypes {
		for _, accessMethod := range object.AccessMethods {
			if accessMethod.Type != string(accessType) {
				continue
			}
			accessURL, err := r.getAccessURL(ctx, object.ID, accessMethod, ref.Token)
			if err != nil {
				r.logger.Warnf("no available access url of %s access_method: %v", accessMethod.Type, err)
				continue
			}
			fetcher, err := r.pickFetcher(accessType, accessURL)
			if err != nil {
				return err
			}
			return utilsretry.Download(ctx, r.logger, r.cfg.RetryCount, func() error {
				return fetcher.Fetch(ctx, ref.Path, accessURL.URL)
			})
		}
	}

	return fmt.Errorf("can not get suitable fetcher for object %s", object.ID)
}

// getAccessURL returns the method's inline access URL, or resolves it via the
// access endpoint when only an access_id is given.
func (r *objectRepo) getAccessURL(ctx context.Context, objectID string, am drs.AccessMethod, token string) (*drs.AccessURL, error) {
	if am.AccessURL.URL != "" {
		accessURL := am.AccessURL
		return &accessURL, nil
	}
	if am.AccessID == "" {
		return nil, fmt.Errorf("access method has neither access_url nor access_id")
	}
	return r.client.GetAccessURL(ctx, objectID, am.AccessID, token)
}

func (r *objectRepo) pickFetcher(accessType consts.AccessType, accessURL *drs.AccessURL) (fetch.Fetcher, error) {
	switch accessType {
	case consts.AccessTypeHTTPS, consts.AccessTypeHTTP:
		return fetchhttp.NewHTTPFetcher(&fetchhttp.Config{
			Headers: parseHeaders(accessURL.Headers),
		})
	case consts.AccessTypeS3:
		parsedURL, err := url.Parse(accessURL.URL)
		if err != nil {
			return nil, err
		}
		return fetchs3.NewS3Fetcher(r.cfg.S3, parsedURL.User)
	case consts.AccessTypeFTP:
		cfg := *r.cfg.FTP
		if parsedURL, err := url.Parse(accessURL.URL); err == nil && parsedURL.User != nil {
			cfg.AccessKey = parsedURL.User.Username()
			cfg.SecretKey, _ = parsedURL.User.Password()
		}
		return fetchftp.NewFTPFetcher(&cfg)
	case consts.AccessTypeFile:
		return fetchfile.NewFileFetcher(r.cfg.File, r.logger)
	default:
		return nil, fmt.Errorf("unsupported access method type %s", accessType)
	}
}

func (r *objectRepo) verify(object *drs.DrsObject, local string) error {
	stat, err := os.Stat(local)
	if err != nil {
		return fmt.Errorf("failed to stat downloaded file of path %s: %w", local, err)
	}
	if object.Size > 0 && stat.Size() != object.Size {
		return fmt.Errorf("file size not match")
	}

	checker := r.pickAvailableChecker(object.Checksums)
	// skip checksum when no usable checker
	if checker == nil {
		return nil
	}

	check, err := checker.Check(local)
	if err != nil {
		return fmt.Errorf("checker error:%w", err)
	}
	if !check {
		return fmt.Errorf("checksum not match")
	}

	return nil
}

func (r *objectRepo) pickAvailableChecker(checksums []drs.Checksum) checker.Checker {
	if len(checksums) == 0 {
		return nil
	}

	for _, checksumObj := range checksums {
		if checksumObj.Type == consts.CheckerTypeMD5 {
			return md5checker.NewMD5Checker(checksumObj.Checksum)
		}
	}

	r.logger.Warnf("no available checksum checker, skip")
	return nil
}

// parseHeaders turns the "Name: value" strings of an access URL into request
// headers. Entries without a colon (the upstream mock emits "None") are
// dropped.
func parseHeaders(headers []string) map[string]string {
	parsed := make(map[string]string, len(headers))
	for _, header := range headers {
		name, value, found := strings.Cut(header, ":")
		if !found {
			continue
		}
		parsed[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return parsed
}
