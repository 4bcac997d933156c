//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/domain/webform"
	"course-checkout/internal/handler/api"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"
	"course-checkout/tests/common/httptest"
	"course-checkout/tests/common/testutil"
	commandsmock "course-checkout/tests/mock/commands"
	queriesmock "course-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebFormHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebFormCommands
	mockQueries  *queriesmock.MockWebFormQueries
}

func (s *WebFormHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebFormCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWebFormQueries(s.mockCtrl)
	h := api.NewWebFormHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(uuid.New(), user.RoleAdmin)
	s.router.POST("/web-forms", h.Submit)
	s.router.GET("/web-forms", auth, h.List)
	s.router.GET("/web-forms/:id", auth, h.Get)
	s.router.PATCH("/web-forms/:id", auth, h.Update)
	s.router.DELETE("/web-forms/:id", auth, h.Delete)
}

func (s *WebFormHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *WebFormHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebFormHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebFormHandlerTestSuite))
}

func (s *WebFormHandlerTestSuite) TestSubmit() {
	formID := uuid.New()
	reqBody := map[string]any{
		"name":                     "Asha Rao",
		"email":                    "asha@example.com",
		"phone":                    "+91 98450 00000",
		"formType":                 "requestServer",
		"requestServerCloudServer": "aws",
		"requestServerDuration":    "3 months",
	}

	s.Run("success: anonymous submission returns 201 with Location", func() {
		cloud, duration := "aws", "3 months"
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), commands.WebFormInput{
				Name:     "Asha Rao",
				Email:    "asha@example.com",
				Phone:    "+91 98450 00000",
				FormType: "requestServer",
				Details:  webform.Details{ServerCloud: &cloud, ServerDuration: &duration},
			}).
			Return(formID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/web-forms", reqBody, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(formID.String(), body["id"])
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/web-forms/" + formID.String()})
	})

	invalid := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "unknown form type", mutate: testutil.Field("formType", "newsletter")},
		{name: "missing name", mutate: testutil.Field("name", nil)},
		{name: "missing phone", mutate: testutil.Field("phone", nil)},
		{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		{name: "linkedin is not a url", mutate: testutil.Field("becomeInstructorLinkedin", "asha")},
	}
	for _, tc := range invalid {
		s.Run("error: 400 on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/web-forms", testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: domain validation maps to 400", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(uuid.Nil, webform.ErrMissingPhone)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/web-forms", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *WebFormHandlerTestSuite) TestList() {
	s.Run("success: filters by form type", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p queries.ListParams) (*queries.Page[*queries.WebFormView], error) {
				return &queries.Page[*queries.WebFormView]{
					Items: []*queries.WebFormView{{ID: uuid.New(), Name: "Asha Rao", FormType: "bookDemo"}},
					Page:  p.Page,
					Limit: p.Limit,
					Total: 1,
				}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/web-forms?formType=bookDemo", nil, "bearer-token")

		var body struct {
			TotalDocuments int64                       `json:"totalDocuments"`
			Data           map[string][]map[string]any `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(1, body.TotalDocuments)
		s.Len(body.Data["webForms"], 1)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/web-forms", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid Token")
	})
}

func (s *WebFormHandlerTestSuite) TestUpdateAndDelete() {
	formID := uuid.New()
	url := "/web-forms/" + formID.String()

	s.Run("success: patch maps only provided fields", func() {
		topic := "Kubernetes"
		s.mockCommands.EXPECT().
			Update(gomock.Any(), formID, commands.WebFormPatch{RequestCourseTopic: &topic}).
			Return(nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), formID).Return(&queries.WebFormView{ID: formID, RequestCourseTopic: &topic}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"requestCourseTopic": topic}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for an unknown form", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), formID).Return(webform.ErrFormNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "web form not found")
	})

	s.Run("success: delete returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), formID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
