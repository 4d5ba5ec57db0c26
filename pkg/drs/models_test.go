package drs

import (
	"encoding/json"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestErrorUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expectErr bool
		expected  Error
	}{
		{
			name:     "numeric status_code",
			body:     `{"msg": "not found", "status_code": 404}`,
			expected: Error{Msg: "not found", StatusCode: 404},
		},
		{
			name:     "quoted status_code",
			body:     `{"msg": "not found", "status_code": "404"}`,
			expected: Error{Msg: "not found", StatusCode: 404},
		},
		{
			name:      "non-numeric status_code",
			body:      `{"msg": "not found", "status_code": "abc"}`,
			expectErr: true,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			var apiError Error
			err := json.Unmarshal([]byte(tc.body), &apiError)
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
				convey.So(apiError, convey.ShouldResemble, tc.expected)
			}
		})
	}
}

func TestAccessMethodValidate(t *testing.T) {
	tests := []struct {
		name         string
		accessMethod AccessMethod
		expectErr    bool
	}{
		{
			name: "inline access URL",
			accessMethod: AccessMethod{
				Type:      "https",
				AccessURL: AccessURL{URL: "https://remote.com/obj"},
			},
		},
		{
			name: "access id only",
			accessMethod: AccessMethod{
				Type:     "s3",
				AccessID: "acc1",
			},
		},
		{
			name: "neither access URL nor access id",
			accessMethod: AccessMethod{
				Type: "ftp",
			},
			expectErr: true,
		},
		{
			name: "missing type",
			accessMethod: AccessMethod{
				AccessURL: AccessURL{URL: "https://remote.com/obj"},
			},
			expectErr: true,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			err := tc.accessMethod.Validate()
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
			}
		})
	}
}
