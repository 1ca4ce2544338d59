//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/handler/api"
	reqdto "sncleaning-pricing/internal/handler/dto/request"
	resdto "sncleaning-pricing/internal/handler/dto/response"
	"sncleaning-pricing/internal/pkg/errs"
	"sncleaning-pricing/internal/pkg/ptr"
	"sncleaning-pricing/internal/usecase/commands"
	"sncleaning-pricing/tests/common/builder"
	"sncleaning-pricing/tests/common/httptest"
	"sncleaning-pricing/tests/common/testutil"
	commandsmock "sncleaning-pricing/tests/mock/commands"
	queriesmock "sncleaning-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OverrideHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOverrideCommands
	mockQueries  *queriesmock.MockRuleQueries
	handler      *api.OverrideHandler
}

func (s *OverrideHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOverrideCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRuleQueries(s.mockCtrl)
	s.handler = api.NewOverrideHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/overrides", s.handler.List)
	s.router.POST("/admin/overrides", s.handler.Create)
	s.router.PUT("/admin/overrides/:id", s.handler.Update)
	s.router.DELETE("/admin/overrides/:id", s.handler.Delete)
}

func (s *OverrideHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOverrideHandlerSuite(t *testing.T) {
	suite.Run(t, new(OverrideHandlerTestSuite))
}

func (s *OverrideHandlerTestSuite) TestList() {
	customerID := uuid.New()
	serviceWide := builder.NewOverrideBuilder().WithCustomer(customerID).MustBuildDomain()
	deep := builder.NewOverrideBuilder().WithCustomer(customerID).WithCleaningType("deep").WithRate("-5").MustBuildDomain()

	s.Run("success: filters by customer", func() {
		s.mockQueries.EXPECT().ListOverrides(gomock.Any(), &customerID).
			Return([]*override.PricingOverride{serviceWide, deep}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/overrides?customerId="+customerID.String(), nil, "")

		var body []resdto.OverrideResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(serviceWide.ID(), body[0].ID)
		s.Nil(body[0].CleaningType)
		s.Equal("-3.00", body[0].OverrideRate)
		s.Equal("deep", *body[1].CleaningType)
		s.Equal("-5.00", body[1].OverrideRate)
	})

	s.Run("success: no filter lists every customer", func() {
		s.mockQueries.EXPECT().ListOverrides(gomock.Any(), (*uuid.UUID)(nil)).
			Return([]*override.PricingOverride{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/overrides", nil, "")

		var body []resdto.OverrideResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 on malformed customer id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/overrides?customerId=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid customer id")
	})
}

func (s *OverrideHandlerTestSuite) TestCreate() {
	url := "/admin/overrides"
	customerID := uuid.New()
	reqBody := reqdto.OverrideRequest{
		CustomerID:   customerID,
		ServiceType:  "domestic",
		CleaningType: ptr.Of("deep"),
		OverrideRate: ptr.Of(decimal.RequireFromString("-2.5")),
	}
	created := builder.NewOverrideBuilder().WithCustomer(customerID).WithCleaningType("deep").WithRate("-2.5").MustBuildDomain()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.OverrideInput) (*override.PricingOverride, error) {
				s.Equal(customerID, in.CustomerID)
				s.Equal("domestic", in.ServiceType)
				s.Equal("deep", *in.CleaningType)
				s.True(in.OverrideRate.Equal(decimal.RequireFromString("-2.5")))
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.OverrideResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("-2.50", body.OverrideRate)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/admin/overrides/" + created.ID().String()})
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: customerId", mutate: testutil.Field("customerId", nil)},
			{name: "nil customerId", mutate: testutil.Field("customerId", uuid.Nil.String())},
			{name: "missing field: serviceType", mutate: testutil.Field("serviceType", nil)},
			{name: "missing field: overrideRate", mutate: testutil.Field("overrideRate", nil)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate scope",
				err:            errs.Mark(errors.New("23505"), commands.ErrOverrideConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Override already exists",
			},
			{
				name:           "blank service type",
				err:            errs.Mark(override.ErrEmptyServiceType, commands.ErrInvalidOverride),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid pricing override",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *OverrideHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/admin/overrides/" + id.String()
	reqBody := reqdto.OverrideRequest{
		CustomerID:   uuid.New(),
		ServiceType:  "office",
		OverrideRate: ptr.Of(decimal.NewFromInt(4)),
	}

	s.Run("success: returns the updated override", func() {
		updated := builder.NewOverrideBuilder().With(func(b *builder.OverrideBuilder) { b.ID = id }).WithRate("4").MustBuildDomain()
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var body resdto.OverrideResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("4.00", body.OverrideRate)
	})

	s.Run("error: 404 when the override does not exist", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, commands.ErrOverrideNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pricing override not found")
	})
}

func (s *OverrideHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/admin/overrides/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/overrides/123", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
