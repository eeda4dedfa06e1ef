package api

import (
	"bytes"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/logger"
	"github.com/fsdevblog/groph-resto/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-resto/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-resto/internal/transport/api/tokens"
)

type TablesHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockTableService *mocks.MockTableServicer
	jwtSecret        []byte
	adminToken       string
}

func TestTablesHandlerSuite(t *testing.T) {
	suite.Run(t, new(TablesHandlerTestSuite))
}

func (s *TablesHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockTableService = mocks.NewMockTableServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	token, tokenErr := tokens.GenerateStaffJWT(7, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.adminToken = token

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		TableService: s.mockTableService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *TablesHandlerTestSuite) TestCreate() {
	s.mockTableService.EXPECT().
		Create(gomock.Any(), int32(12), int32(4), "terrace").
		Return(&domain.DiningTable{ID: 1, Number: 12, Capacity: 4, Location: "terrace"}, nil).Times(1)
	s.mockTableService.EXPECT().
		Create(gomock.Any(), int32(12), int32(4), "").
		Return(nil, domain.ErrDuplicateKey).Times(1)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    `{"number":12,"capacity":4,"location":"terrace"}`,
			wantStatus: http.StatusCreated,
		}, {
			name:       "duplicate number",
			payload:    `{"number":12,"capacity":4}`,
			wantStatus: http.StatusConflict,
		}, {
			name:       "zero capacity",
			payload:    `{"number":12,"capacity":0}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + TablesRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}
			res, err := testutils.MakeRequest(args, testutils.WithJSON(), testutils.WithBearerToken(s.adminToken))

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *TablesHandlerTestSuite) TestDelete() {
	s.mockTableService.EXPECT().
		Delete(gomock.Any(), int64(5)).
		Return(nil).Times(1)
	s.mockTableService.EXPECT().
		Delete(gomock.Any(), int64(6)).
		Return(domain.ErrHasActiveReservations).Times(1)
	s.mockTableService.EXPECT().
		Delete(gomock.Any(), int64(7)).
		Return(domain.ErrReferencedRecord).Times(1)
	s.mockTableService.EXPECT().
		Delete(gomock.Any(), int64(404)).
		Return(domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "all ok", url: RouteGroup + TablesRoute + "/5", wantStatus: http.StatusNoContent},
		{name: "active reservations", url: RouteGroup + TablesRoute + "/6", wantStatus: http.StatusConflict},
		{name: "referenced by history", url: RouteGroup + TablesRoute + "/7", wantStatus: http.StatusConflict},
		{name: "not found", url: RouteGroup + TablesRoute + "/404", wantStatus: http.StatusNotFound},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodDelete,
				URL:    t.url,
			}
			res, err := testutils.MakeRequest(args, testutils.WithBearerToken(s.adminToken))

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *TablesHandlerTestSuite) TestIndex() {
	s.mockTableService.EXPECT().
		List(gomock.Any()).
		Return([]domain.DiningTable{{ID: 1, Number: 12, Capacity: 4}}, nil).Times(1)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + TablesRoute,
	}
	res, err := testutils.MakeRequest(args, testutils.WithBearerToken(s.adminToken))

	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.StatusCode)
}
