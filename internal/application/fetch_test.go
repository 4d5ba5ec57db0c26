package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/smartystreets/goconvey/convey"

	"github.com/GBA-BI/drs-client/pkg/mock"
)

func TestFetchCmd_Fetch(t *testing.T) {
	tests := []struct {
		name      string
		uri       string
		repoErr   error
		expectErr bool
	}{
		{
			name: "successfully fetch object",
			uri:  "drs://fakehost.com/a011",
		},
		{
			name:      "repository error is propagated",
			uri:       "drs://fakehost.com/a011",
			repoErr:   fmt.Errorf("materialize failed"),
			expectErr: true,
		},
		{
			name:      "empty uri fails before touching the repository",
			uri:       "",
			expectErr: true,
		},
	}

	for _, tc := range tests {
		convey.Convey(tc.name, t, func() {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mock.NewMockRepository(ctrl)
			if tc.uri != "" {
				mockRepo.EXPECT().Materialize(gomock.Any(), gomock.Any()).Return(tc.repoErr)
			}

			fetchCmd, err := NewFetchCmd(&Config{Path: "/tmp/a011"}, mockRepo)
			convey.So(err, convey.ShouldBeNil)

			err = fetchCmd.Fetch(context.Background(), tc.uri, "")
			if tc.expectErr {
				convey.So(err, convey.ShouldNotBeNil)
			} else {
				convey.So(err, convey.ShouldBeNil)
			}
		})
	}
}
