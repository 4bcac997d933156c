//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"course-checkout/internal/domain/manualtransaction"
	"course-checkout/internal/domain/user"
	"course-checkout/internal/handler/api"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"
	"course-checkout/tests/common/httptest"
	"course-checkout/tests/common/testutil"
	commandsmock "course-checkout/tests/mock/commands"
	queriesmock "course-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BackofficeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockTxCmds  *commandsmock.MockManualTransactionCommands
	mockTxQs    *queriesmock.MockManualTransactionQueries
	mockStatsQs *queriesmock.MockStatsQueries
}

func (s *BackofficeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTxCmds = commandsmock.NewMockManualTransactionCommands(s.mockCtrl)
	s.mockTxQs = queriesmock.NewMockManualTransactionQueries(s.mockCtrl)
	s.mockStatsQs = queriesmock.NewMockStatsQueries(s.mockCtrl)
	txs := api.NewManualTransactionHandler(s.mockTxCmds, s.mockTxQs)
	stats := api.NewStatsHandler(s.mockStatsQs)

	auth := fakeAuth(uuid.New(), user.RoleSuperAdmin)
	s.router.POST("/manual-transactions", auth, txs.Create)
	s.router.PATCH("/manual-transactions/:id", auth, txs.Update)
	s.router.GET("/manual-transactions/:id", auth, txs.Get)
	s.router.GET("/stats", auth, stats.Get)
}

func (s *BackofficeHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *BackofficeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBackofficeHandlerSuite(t *testing.T) {
	suite.Run(t, new(BackofficeHandlerTestSuite))
}

func (s *BackofficeHandlerTestSuite) TestCreateManualTransaction() {
	txID := uuid.New()
	reqBody := map[string]any{
		"userName":            "Ravi Kumar",
		"userEmail":           "ravi@example.com",
		"userPhoneNumber":     "+91 90000 00000",
		"courseName":          "Go Fundamentals",
		"paymentGateway":      "bank-transfer",
		"transactionId":       "NEFT-0042",
		"transactionCurrency": "INR",
		"transactionAmount":   "4999.00",
		"transactionDate":     "2024-05-20T10:00:00Z",
		"isPaid":              true,
	}

	s.Run("success: returns 201 with the stored transaction", func() {
		s.mockTxCmds.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.ManualTransactionInput) (uuid.UUID, error) {
				s.Equal("NEFT-0042", in.ProviderRef)
				s.True(in.Amount.Equal(decimal.RequireFromString("4999")))
				s.Equal(time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC), in.TransactedAt.UTC())
				s.True(in.IsPaid)
				return txID, nil
			})
		s.mockTxQs.EXPECT().Get(gomock.Any(), txID).Return(&queries.ManualTransactionView{ID: txID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/manual-transactions", reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/manual-transactions/" + txID.String()})
	})

	missing := []string{"userName", "userEmail", "userPhoneNumber", "courseName", "paymentGateway", "transactionId", "transactionCurrency", "transactionDate"}
	for _, field := range missing {
		s.Run("error: 400 when "+field+" is missing", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/manual-transactions", testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil)), "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: domain validation maps to 400", func() {
		s.mockTxCmds.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, manualtransaction.ErrInvalidAmount)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/manual-transactions", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BackofficeHandlerTestSuite) TestUpdateManualTransaction() {
	txID := uuid.New()
	url := "/manual-transactions/" + txID.String()

	s.Run("success: patch carries only provided fields", func() {
		paid := false
		s.mockTxCmds.EXPECT().
			Update(gomock.Any(), txID, commands.ManualTransactionPatch{IsPaid: &paid}).
			Return(nil)
		s.mockTxQs.EXPECT().Get(gomock.Any(), txID).Return(&queries.ManualTransactionView{ID: txID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"isPaid": false}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for an unknown transaction", func() {
		s.mockTxQs.EXPECT().Get(gomock.Any(), txID).Return(nil, manualtransaction.ErrTransactionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *BackofficeHandlerTestSuite) TestStats() {
	s.Run("success: returns counts and series", func() {
		s.mockStatsQs.EXPECT().Get(gomock.Any()).Return(&queries.StatsView{
			StatsCounts: queries.StatsCounts{Users: 42},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stats", nil, "bearer-token")

		var body struct {
			Data struct {
				Stats map[string]any `json:"stats"`
			} `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(42, body.Data.Stats["numUsers"])
	})
}
