package domain

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"

	"github.com/GBA-BI/drs-client/pkg/apperror"
	"github.com/GBA-BI/drs-client/pkg/consts"
	"github.com/GBA-BI/drs-client/pkg/drs"
	utilsstrings "github.com/GBA-BI/drs-client/pkg/utils/strings"
)

// ObjectRef describes one DRS object to materialize locally.
type ObjectRef struct {
	URI   string // bare identifier or hostname-based DRS URI
	Path  string // local destination path
	Token string

	// AccessTypes is the preference order in which access methods are tried.
	AccessTypes []consts.AccessType
}

var defaultAccessTypes = []consts.AccessType{
	consts.AccessTypeHTTPS,
	consts.AccessTypeHTTP,
	consts.AccessTypeS3,
	consts.AccessTypeFTP,
	consts.AccessTypeFile,
}

func (o *ObjectRef) SetAccessTypes(types []string) error {
	if len(types) == 0 {
		o.AccessTypes = defaultAccessTypes
		return nil
	}
	known := []string{
		string(consts.AccessTypeHTTPS),
		string(consts.AccessTypeHTTP),
		string(consts.AccessTypeS3),
		string(consts.AccessTypeFTP),
		string(consts.AccessTypeFile),
	}
	o.AccessTypes = make([]consts.AccessType, 0, len(types))
	for _, typ := range types {
		typ = strings.ToLower(typ)
		if !utilsstrings.Contains(known, typ) {
			return apperror.NewInvalidArgumentError("ObjectRef.AccessTypes", typ)
		}
		o.AccessTypes = append(o.AccessTypes, consts.AccessType(typ))
	}
	return nil
}

func (o *ObjectRef) Complete() error {
	if o.URI == "" {
		return apperror.NewInvalidArgumentError("ObjectRef.URI", o.URI)
	}
	if o.Path == "" {
		return apperror.NewInvalidArgumentError("ObjectRef.Path", o.Path)
	}
	return nil
}

// Factory
type CreateObjectRefParam struct {
	URI   string   `json:"uri"`
	Path  string   `json:"path"`
	Token string   `json:"token"`
	Types []string `json:"access_types"`
}

type ObjectRefFactory interface {
	New(param *CreateObjectRefParam) (*ObjectRef, error)
}

type objectRefFactoryImpl struct{}

func NewObjectRefFactory() ObjectRefFactory {
	return &objectRefFactoryImpl{}
}

func (i *objectRefFactoryImpl) New(param *CreateObjectRefParam) (*ObjectRef, error) {
	objectRef := &ObjectRef{}
	if err := copier.Copy(objectRef, param); err != nil {
		return nil, apperror.NewInternalError(err)
	}
	if err := objectRef.SetAccessTypes(param.Types); err != nil {
		return nil, err
	}
	if err := objectRef.Complete(); err != nil {
		return nil, err
	}
	return objectRef, nil
}

// repo
type Repository interface {
	Resolve(ctx context.Context, ref *ObjectRef) (*drs.DrsObject, error)
	Materialize(ctx context.Context, ref *ObjectRef) error
}
