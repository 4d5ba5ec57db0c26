package repo

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/golang/mock/gomock"
	"github.com/smartystreets/goconvey/convey"

	"github.com/GBA-BI/drs-client/internal/domain"
	"github.com/GBA-BI/drs-client/pkg/checker"
	"github.com/GBA-BI/drs-client/pkg/consts"
	"github.com/GBA-BI/drs-client/pkg/drs"
	"github.com/GBA-BI/drs-client/pkg/fetch"
	fetchhttp "github.com/GBA-BI/drs-client/pkg/fetch/http"
	"github.com/GBA-BI/drs-client/pkg/log"
	"github.com/GBA-BI/drs-client/pkg/mock"
)

func newTestRepo(t *testing.T) *objectRepo {
	t.Helper()
	client, err := drs.New(&drs.Config{URI: "https://fakehost.com"}, log.NewNopLogger())
	if err != nil {
		t.Fatalf("failed to build client: %v", err)
	}
	return &objectRepo{
		client: client,
		cfg:    NewConfig(),
		logger: log.NewNopLogger(),
	}
}

func TestObjectRepo_getAccessURL(t *testing.T) {
	tests := []struct {
		name         string
		accessMethod drs.AccessMethod
		resolveErr   bool
		expectErr    bool
		expectedURL  string
	}{
		{
			name: "inline access URL wins",
			accessMethod: drs.AccessMethod{
				Type:      "https",
				AccessURL: drs.AccessURL{URL: "https://remote.com/obj"},
				AccessID:  "acc1",
			},
			expectedURL: "https://remote.com/obj",
		},
		{
			name: "access id resolved via access endpoint",
			accessMethod: drs.AccessMethod{
				Type:     "ftp",
				AccessID: "acc1",
			},
			expectedURL: "ftp://my.ftp.service/my_path/my_file_01.txt",
		},
		{
			name: "neither access URL nor access id",
			accessMethod: drs.AccessMethod{
				Type: "ftp",
			},
			expectErr: true,
		},
		{
			name: "access endpoint failure",
			accessMethod: drs.AccessMethod{
				Type:     "ftp",
				AccessID: "acc1",
			},
			resolveErr: true,
			expectErr:  true,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			repo := newTestRepo(t)

			patch := gomonkey.ApplyMethod(reflect.TypeOf(repo.client), "GetAccessURL", func(_ *drs.Client, _ context.Context, _, _, _ string) (*drs.AccessURL, error) {
				if tc.resolveErr {
					return nil, fmt.Errorf("failed to get access url")
				}
				return &drs.AccessURL{URL: "ftp://my.ftp.service/my_path/my_file_01.txt"}, nil
			})
			defer patch.Reset()

			accessURL, err := repo.getAccessURL(context.Background(), "a011", tc.accessMethod, "")
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
				convey.So(accessURL.URL, convey.ShouldEqual, tc.expectedURL)
			}
		})
	}
}

func TestObjectRepo_pickAvailableFetcherAndDownload(t *testing.T) {
	tests := []struct {
		name          string
		accessMethods []drs.AccessMethod
		accessTypes   []consts.AccessType
		fetchErr      error
		expectErr     bool
	}{
		{
			name: "successfully pick fetcher and download",
			accessMethods: []drs.AccessMethod{
				{Type: "https", AccessURL: drs.AccessURL{URL: "https://remote.com/obj"}},
			},
			accessTypes: []consts.AccessType{consts.AccessTypeHTTPS},
		},
		{
			name: "preferred type before fallback",
			accessMethods: []drs.AccessMethod{
				{Type: "ftp", AccessURL: drs.AccessURL{URL: "ftp://remote.com/obj"}},
				{Type: "https", AccessURL: drs.AccessURL{URL: "https://remote.com/obj"}},
			},
			accessTypes: []consts.AccessType{consts.AccessTypeHTTPS, consts.AccessTypeFTP},
		},
		{
			name: "no matching access method",
			accessMethods: []drs.AccessMethod{
				{Type: "ftp", AccessURL: drs.AccessURL{URL: "ftp://remote.com/obj"}},
			},
			accessTypes: []consts.AccessType{consts.AccessTypeHTTPS},
			expectErr:   true,
		},
		{
			name: "download failure is propagated",
			accessMethods: []drs.AccessMethod{
				{Type: "https", AccessURL: drs.AccessURL{URL: "https://remote.com/obj"}},
			},
			accessTypes: []consts.AccessType{consts.AccessTypeHTTPS},
			fetchErr:    fmt.Errorf("failed to download"),
			expectErr:   true,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newTestRepo(t)
			repo.cfg.RetryCount = 1

			mockFetcher := mock.NewMockFetcher(ctrl)
			mockFetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), "https://remote.com/obj").Return(tc.fetchErr).AnyTimes()

			patch := gomonkey.ApplyFunc(fetchhttp.NewHTTPFetcher, func(_ *fetchhttp.Config) (fetch.Fetcher, error) {
				return mockFetcher, nil
			})
			defer patch.Reset()

			object := &drs.DrsObject{ID: "a011", AccessMethods: tc.accessMethods}
			ref := &domain.ObjectRef{URI: "a011", Path: "/tmp/a011", AccessTypes: tc.accessTypes}

			err := repo.pickAvailableFetcherAndDownload(context.Background(), object, ref)
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
			}
		})
	}
}

func TestObjectRepo_verify(t *testing.T) {
	tests := []struct {
		name      string
		size      int64
		statSize  int64
		checkPass bool
		noChecker bool
		expectErr bool
	}{
		{
			name:      "size and checksum match",
			size:      100,
			statSize:  100,
			checkPass: true,
		},
		{
			name:      "size mismatch",
			size:      100,
			statSize:  99,
			expectErr: true,
		},
		{
			name:      "checksum mismatch",
			size:      100,
			statSize:  100,
			checkPass: false,
			expectErr: true,
		},
		{
			name:      "no usable checker skips checksum",
			size:      100,
			statSize:  100,
			noChecker: true,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newTestRepo(t)

			mockFile := mock.NewMockFileInfo(ctrl)
			mockFile.EXPECT().Size().Return(tc.statSize).AnyTimes()
			patch1 := gomonkey.ApplyFunc(os.Stat, func(_ string) (os.FileInfo, error) {
				return mockFile, nil
			})
			defer patch1.Reset()

			mockChecker := mock.NewMockChecker(ctrl)
			mockChecker.EXPECT().Check(gomock.Any()).Return(tc.checkPass, nil).AnyTimes()
			patch2 := gomonkey.ApplyPrivateMethod(reflect.TypeOf(repo), "pickAvailableChecker", func(_ *objectRepo, _ []drs.Checksum) checker.Checker {
				if tc.noChecker {
					return nil
				}
				return mockChecker
			})
			defer patch2.Reset()

			object := &drs.DrsObject{
				ID:        "a011",
				Size:      tc.size,
				Checksums: []drs.Checksum{{Type: "md5", Checksum: "18c2f5517e4ddc02cd57f6c7554b8e88"}},
			}
			err := repo.verify(object, "/tmp/a011")
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
			}
		})
	}
}

func TestObjectRepo_Materialize(t *testing.T) {
	tests := []struct {
		name      string
		object    *drs.DrsObject
		expectErr bool
	}{
		{
			name: "successfully materialize object",
			object: &drs.DrsObject{
				ID:            "a011",
				AccessMethods: []drs.AccessMethod{{Type: "https", AccessURL: drs.AccessURL{URL: "https://remote.com/obj"}}},
			},
		},
		{
			name:      "object without access methods",
			object:    &drs.DrsObject{ID: "a011"},
			expectErr: true,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			repo := newTestRepo(t)

			patch1 := gomonkey.ApplyMethod(reflect.TypeOf(repo.client), "GetObject", func(_ *drs.Client, _ context.Context, _, _ string) (*drs.DrsObject, error) {
				return tc.object, nil
			})
			defer patch1.Reset()

			patch2 := gomonkey.ApplyPrivateMethod(reflect.TypeOf(repo), "pickAvailableFetcherAndDownload", func(_ *objectRepo, _ context.Context, _ *drs.DrsObject, _ *domain.ObjectRef) error {
				return nil
			})
			defer patch2.Reset()

			patch3 := gomonkey.ApplyPrivateMethod(reflect.TypeOf(repo), "verify", func(_ *objectRepo, _ *drs.DrsObject, _ string) error {
				return nil
			})
			defer patch3.Reset()

			ref := &domain.ObjectRef{URI: "a011", Path: "/tmp/a011", AccessTypes: []consts.AccessType{consts.AccessTypeHTTPS}}
			err := repo.Materialize(context.Background(), ref)
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
			}
		})
	}
}

func TestParseHeaders(t *testing.T) {
	convey.Convey("headers are parsed and placeholders dropped", t, func() {
		parsed := parseHeaders([]string{"Authorization: Basic Z2E0Z2g6ZHJz", "None", "X-Custom:value"})
		convey.So(parsed, convey.ShouldResemble, map[string]string{
			"Authorization": "Basic Z2E0Z2g6ZHJz",
			"X-Custom":      "value",
		})
	})
}
