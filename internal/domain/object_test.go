package domain

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/GBA-BI/drs-client/pkg/consts"
)

func TestObjectRefFactory_New(t *testing.T) {
	tests := []struct {
		name          string
		param         *CreateObjectRefParam
		expectedTypes []consts.AccessType
		expectErr     bool
	}{
		{
			name: "default access types",
			param: &CreateObjectRefParam{
				URI:  "drs://fakehost.com/a011",
				Path: "/tmp/a011",
			},
			expectedTypes: defaultAccessTypes,
		},
		{
			name: "explicit access types are lower-cased",
			param: &CreateObjectRefParam{
				URI:   "a011",
				Path:  "/tmp/a011",
				Types: []string{"S3", "https"},
			},
			expectedTypes: []consts.AccessType{consts.AccessTypeS3, consts.AccessTypeHTTPS},
		},
		{
			name: "unknown access type",
			param: &CreateObjectRefParam{
				URI:   "a011",
				Path:  "/tmp/a011",
				Types: []string{"gopher"},
			},
			expectErr: true,
		},
		{
			name: "missing URI",
			param: &CreateObjectRefParam{
				Path: "/tmp/a011",
			},
			expectErr: true,
		},
		{
			name: "missing path",
			param: &CreateObjectRefParam{
				URI: "a011",
			},
			expectErr: true,
		},
	}

	factory := NewObjectRefFactory()
	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			ref, err := factory.New(tc.param)
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
				convey.So(ref.URI, convey.ShouldEqual, tc.param.URI)
				convey.So(ref.Path, convey.ShouldEqual, tc.param.Path)
				convey.So(ref.AccessTypes, convey.ShouldResemble, tc.expectedTypes)
			}
		})
	}
}
