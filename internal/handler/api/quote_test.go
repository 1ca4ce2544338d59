//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/domain/quote"
	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/handler/api"
	resdto "sncleaning-pricing/internal/handler/dto/response"
	"sncleaning-pricing/internal/usecase/queries"
	"sncleaning-pricing/internal/usecase/shared"
	"sncleaning-pricing/tests/common/builder"
	"sncleaning-pricing/tests/common/httptest"
	"sncleaning-pricing/tests/common/testutil"
	queriesmock "sncleaning-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockQuotes *queriesmock.MockQuoteQueries
	mockRates  *queriesmock.MockRateQueries
	handler    *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQuotes = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.mockRates = queriesmock.NewMockRateQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQuotes, s.mockRates)

	s.router.POST("/quotes", s.handler.CreateQuote)
	s.router.GET("/customers/:id/rate", s.handler.ResolveRate)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

type testCaseQuote struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateQuote
// ================================================================================

func (s *QuoteHandlerTestSuite) TestCreateQuote() {
	url := "/quotes"
	customerID := uuid.New()
	reqBody := builder.NewQuoteRequestBuilder().WithCustomer(customerID).WithCleaningType("deep").BuildRequestDTO()

	surchargeID := uuid.New()
	priced := &quote.Quote{
		IsBookable:          true,
		FinalPrice:          decimal.RequireFromString("56.5"),
		AppliedRuleIDs:      []uuid.UUID{surchargeID},
		EffectiveHourlyRate: decimal.NewFromInt(17),
		BasePrice:           decimal.NewFromInt(51),
		RateOverrideApplied: true,
	}

	s.Run("success: returns the priced quote", func() {
		s.mockQuotes.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.QuoteRequest) (*quote.Quote, error) {
				s.Equal(customerID, req.CustomerID)
				s.Equal("domestic", req.ServiceType)
				s.Equal("deep", *req.CleaningType)
				s.Equal(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), req.Date)
				s.Equal(rule.MustClockTime("09:00"), req.StartTime)
				s.True(req.DurationHours.Equal(decimal.NewFromInt(3)))
				s.True(req.BaseHourlyRate.Equal(decimal.NewFromInt(20)))
				return priced, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.IsBookable)
		s.False(body.IsOvertime)
		s.Equal("56.50", body.FinalPrice)
		s.Equal("17.00", body.EffectiveHourlyRate)
		s.Equal("51.00", body.BasePrice)
		s.Equal([]uuid.UUID{surchargeID}, body.AppliedRuleIDs)
		s.Empty(body.RejectionReason)
		s.True(body.RateOverrideApplied)
	})

	s.Run("success: anonymous request has no customer", func() {
		anonymous := builder.NewQuoteRequestBuilder().BuildRequestDTO()
		s.mockQuotes.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.QuoteRequest) (*quote.Quote, error) {
				s.Equal(uuid.Nil, req.CustomerID)
				s.Nil(req.CleaningType)
				return priced, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, anonymous, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: rejected slot is a 200 with a reason", func() {
		rejected := quote.Rejected(quote.Slot{Reason: quote.RejectionOutsideAvailableHours})
		s.mockQuotes.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(&rejected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.IsBookable)
		s.Equal("outside_available_hours", body.RejectionReason)
		s.Equal("0.00", body.FinalPrice)
		s.Empty(body.AppliedRuleIDs)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		missing := []testCaseQuote{
			{name: "missing field: serviceType", mutate: testutil.Field("serviceType", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: startTime", mutate: testutil.Field("startTime", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: durationHours", mutate: testutil.Field("durationHours", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: baseHourlyRate", mutate: testutil.Field("baseHourlyRate", nil), expectCode: http.StatusBadRequest},
		}
		malformed := []testCaseQuote{
			{name: "date in wrong layout", mutate: testutil.Field("date", "05/03/2025"), expectCode: http.StatusBadRequest},
			{name: "start time out of range", mutate: testutil.Field("startTime", "25:00"), expectCode: http.StatusBadRequest},
			{name: "start time not a time", mutate: testutil.Field("startTime", "morning"), expectCode: http.StatusBadRequest},
			{name: "duration not a number", mutate: testutil.Field("durationHours", "three"), expectCode: http.StatusBadRequest},
			{name: "customer id not a uuid", mutate: testutil.Field("customerId", "42"), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseQuote{missing, malformed} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				})
			}
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
				name:           "non-positive duration",
				err:            quote.ErrInvalidDuration,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Duration must be greater than zero",
			},
			{
				name:           "missing service type",
				err:            queries.ErrServiceTypeRequired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Service type is required",
			},
			{
				name:           "rule store unavailable",
				err:            shared.MarkUnavailable(context.DeadlineExceeded),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "please try again",
			},
			{
				name:           "unexpected error",
				err:            errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQuotes.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestResolveRate
// ================================================================================

func (s *QuoteHandlerTestSuite) TestResolveRate() {
	customerID := uuid.New()
	overrideID := uuid.New()
	url := "/customers/" + customerID.String() + "/rate?serviceType=domestic&cleaningType=deep&baseRate=20"

	s.Run("success: returns the effective rate", func() {
		s.mockRates.EXPECT().ResolveRate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.RateRequest) (*override.Resolution, error) {
				s.Equal(customerID, req.CustomerID)
				s.Equal("domestic", req.ServiceType)
				s.Equal("deep", *req.CleaningType)
				s.True(req.BaseRate.Equal(decimal.NewFromInt(20)))
				return &override.Resolution{
					Rate:       decimal.NewFromInt(17),
					Applied:    true,
					OverrideID: &overrideID,
					Delta:      decimal.NewFromInt(-3),
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.RateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(customerID, body.CustomerID)
		s.Equal("17.00", body.EffectiveRate)
		s.True(body.OverrideApplied)
		s.Equal(&overrideID, body.OverrideID)
		s.Equal("-3.00", body.OverrideAdjustment)
	})

	s.Run("success: blank cleaning type is omitted", func() {
		s.mockRates.EXPECT().ResolveRate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.RateRequest) (*override.Resolution, error) {
				s.Nil(req.CleaningType)
				res := override.BaseResolution(req.BaseRate)
				return &res, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/customers/"+customerID.String()+"/rate?serviceType=domestic&cleaningType=&baseRate=20", nil, "")

		var body resdto.RateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.OverrideApplied)
		s.Nil(body.OverrideID)
		s.Equal("20.00", body.EffectiveRate)
	})

	s.Run("error: 400 Bad Request on invalid input", func() {
		testCases := []struct {
			name string
			url  string
		}{
			{name: "customer id not a uuid", url: "/customers/abc/rate?serviceType=domestic&baseRate=20"},
			{name: "missing service type", url: "/customers/" + customerID.String() + "/rate?baseRate=20"},
			{name: "missing base rate", url: "/customers/" + customerID.String() + "/rate?serviceType=domestic"},
			{name: "base rate not a number", url: "/customers/" + customerID.String() + "/rate?serviceType=domestic&baseRate=lots"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid")
			})
		}
	})

	s.Run("error: 503 when overrides cannot be read", func() {
		s.mockRates.EXPECT().ResolveRate(gomock.Any(), gomock.Any()).
			Return(nil, shared.MarkUnavailable(errors.New("connection refused"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}
