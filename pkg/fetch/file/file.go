package file

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/GBA-BI/drs-client/pkg/consts"
	"github.com/GBA-BI/drs-client/pkg/fetch"
	"github.com/GBA-BI/drs-client/pkg/log"
	utilspath "github.com/GBA-BI/drs-client/pkg/utils/path"
)

type fileFetcher struct {
	basePath string
	logger   log.Logger
}

func NewFileFetcher(cfg *Config, logger log.Logger) (fetch.Fetcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config of file fetcher")
	}
	return &fileFetcher{
		basePath: cfg.BasePath,
		logger:   logger,
	}, nil
}

// Fetch symlinks the path behind a file:// access URL to local. When a base
// path is configured, remote paths outside it are rejected.
func (ft *fileFetcher) Fetch(ctx context.Context, local, remote string) error {
	srcPath, err := ft.getPathFromURL(remote)
	if err != nil {
		return err
	}
	ft.logger.Infof("symlink %s to %s", srcPath, local)
	return symlink(srcPath, local)
}

func (ft *fileFetcher) getPathFromURL(urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("failed to get path: %w", err)
	}
	if ft.basePath == "" {
		return parsedURL.Path, nil
	}
	relPath, err := filepath.Rel(ft.basePath, parsedURL.Path)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(relPath, "..") {
		return "", fmt.Errorf("'%s' is not a descendant of base path %s", parsedURL.Path, ft.basePath)
	}
	return filepath.Join(ft.basePath, relPath), nil
}

func symlink(src, dst string) error {
	exist, err := utilspath.FileExists(src)
	if err != nil {
		return err
	}
	if !exist {
		return fmt.Errorf("source file %s does not exist", src)
	}

	dstDir := filepath.Dir(dst)
	if _, err := os.Stat(dstDir); os.IsNotExist(err) {
		os.MkdirAll(dstDir, consts.DefaultFileMode)
	}
	return os.Symlink(src, dst)
}
