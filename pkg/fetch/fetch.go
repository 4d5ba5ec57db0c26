package fetch

import "context"

// Fetcher materializes the bytes behind one resolved access URL at a local
// path. Backends exist per DRS access-method type (https, ftp, s3, file).
type Fetcher interface {
	Fetch(ctx context.Context, local, remote string) error
}
