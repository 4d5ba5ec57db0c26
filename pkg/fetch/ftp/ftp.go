package ftp

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jlaffaye/ftp"

	"github.com/GBA-BI/drs-client/pkg/apperror"
	"github.com/GBA-BI/drs-client/pkg/consts"
	"github.com/GBA-BI/drs-client/pkg/fetch"
)

func NewFTPFetcher(cfg *Config) (fetch.Fetcher, error) {
	if cfg == nil {
		return nil, apperror.NewInvalidArgumentError("FTPFetcher", "Config")
	}
	username := cfg.AccessKey
	if username == "" {
		username = anonymousUser
	}
	return &ftpFetcher{
		username: username,
		password: cfg.SecretKey,
	}, nil
}

type ftpFetcher struct {
	username string
	password string
}

// Fetch dials the host named in the remote ftp:// URL, so one fetcher can
// serve access URLs pointing at different FTP servers.
func (t *ftpFetcher) Fetch(ctx context.Context, local, remote string) error {
	parsedURL, err := url.Parse(remote)
	if err != nil {
		return apperror.NewInvalidArgumentError("remote", remote)
	}
	host := parsedURL.Host
	if parsedURL.Port() == "" {
		host = fmt.Sprintf("%s:21", host)
	}

	conn, err := ftp.Dial(host, ftp.DialWithContext(ctx))
	if err != nil {
		return fmt.Errorf("connect error: %w", err)
	}
	defer conn.Quit()

	if err := conn.Login(t.username, t.password); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	basedir := filepath.Dir(local)
	if err := os.MkdirAll(basedir, os.FileMode(consts.DefaultFileMode)); err != nil {
		return fmt.Errorf("failed to mkdir: %w", err)
	}

	resp, err := conn.Retr(parsedURL.Path)
	if err != nil {
		return fmt.Errorf("retrieve error: %w", err)
	}
	defer resp.Close()

	out, err := os.Create(local)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp)
	if err != nil {
		return fmt.Errorf("copy error:%w", err)
	}

	return nil
}
