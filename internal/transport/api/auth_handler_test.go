package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/logger"
	"github.com/fsdevblog/groph-resto/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-resto/internal/transport/api/testutils"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockStaffService *mocks.MockStaffServicer
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockStaffService = mocks.NewMockStaffServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		StaffService: s.mockStaffService,
		JWTSecretKey: []byte("super secret key"),
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	staff := &domain.Staff{ID: 7, Username: "manager", FullName: "Shift Manager"}

	s.mockStaffService.EXPECT().
		Login(gomock.Any(), "manager", "secret-password").
		Return(staff, "jwt-token", nil).Times(1)
	s.mockStaffService.EXPECT().
		Login(gomock.Any(), "manager", "wrong-password").
		Return(nil, "", domain.ErrPasswordMissMatch).Times(1)
	s.mockStaffService.EXPECT().
		Login(gomock.Any(), "ghost", "secret-password").
		Return(nil, "", domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    `{"login":"manager","password":"secret-password"}`,
			wantStatus: http.StatusOK,
		}, {
			name:       "wrong password",
			payload:    `{"login":"manager","password":"wrong-password"}`,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "unknown user",
			payload:    `{"login":"ghost","password":"secret-password"}`,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "password too short",
			payload:    `{"login":"manager","password":"123"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "malformed json",
			payload:    `{"login":`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + LoginRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}
			res, err := testutils.MakeRequest(args, testutils.WithJSON())

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var response StaffLoginResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				s.Equal(staff.ID, response.ID)
				s.Equal("jwt-token", response.Token)
			}
		})
	}
}
