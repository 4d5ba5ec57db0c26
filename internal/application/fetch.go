package application

import (
	"context"
	"fmt"

	"github.com/GBA-BI/drs-client/internal/domain"
	"github.com/GBA-BI/drs-client/pkg/apperror"
)

// FetchCmd is the use-case of materializing one DRS object locally.
type FetchCmd struct {
	path  string
	types []string

	objectsRepo domain.Repository
	refFactory  domain.ObjectRefFactory
}

func NewFetchCmd(c *Config, objectsRepo domain.Repository) (*FetchCmd, error) {
	if c == nil {
		return nil, apperror.NewInternalError(fmt.Errorf("nil config of application fetch"))
	}
	return &FetchCmd{
		path:        c.Path,
		types:       c.Types,
		objectsRepo: objectsRepo,
		refFactory:  domain.NewObjectRefFactory(),
	}, nil
}

func (f *FetchCmd) Fetch(ctx context.Context, uri, token string) error {
	ref, err := f.refFactory.New(&domain.CreateObjectRefParam{
		URI:   uri,
		Path:  f.path,
		Token: token,
		Types: f.types,
	})
	if err != nil {
		return err
	}

	if err := f.objectsRepo.Materialize(ctx, ref); err != nil {
		return err
	}

	return nil
}
