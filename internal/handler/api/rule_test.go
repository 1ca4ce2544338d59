//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/handler/api"
	reqdto "sncleaning-pricing/internal/handler/dto/request"
	resdto "sncleaning-pricing/internal/handler/dto/response"
	"sncleaning-pricing/internal/pkg/errs"
	"sncleaning-pricing/internal/pkg/ptr"
	"sncleaning-pricing/internal/usecase/commands"
	"sncleaning-pricing/internal/usecase/shared"
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

type RuleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRuleCommands
	mockQueries  *queriesmock.MockRuleQueries
	handler      *api.RuleHandler
}

func (s *RuleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRuleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRuleQueries(s.mockCtrl)
	s.handler = api.NewRuleHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/rules", s.handler.List)
	s.router.POST("/admin/rules", s.handler.Create)
	s.router.POST("/admin/rules/reorder", s.handler.Reorder)
	s.router.PUT("/admin/rules/:id", s.handler.Update)
	s.router.DELETE("/admin/rules/:id", s.handler.Delete)
}

func (s *RuleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRuleHandlerSuite(t *testing.T) {
	suite.Run(t, new(RuleHandlerTestSuite))
}

func surchargeRequest() reqdto.RuleRequest {
	return reqdto.RuleRequest{
		RuleType:      string(rule.TypeTimeSurcharge),
		StartTime:     ptr.Of("06:00"),
		EndTime:       ptr.Of("08:00"),
		PriceModifier: ptr.Of(decimal.NewFromInt(5)),
		ModifierType:  string(rule.ModifierFixed),
		Label:         "Early start",
		DisplayOrder:  2,
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *RuleHandlerTestSuite) TestList() {
	slot := builder.NewTimeSlotBuilder("08:00", "18:00").BuildRecord()
	saturday := builder.NewRuleBuilder(rule.TypeDayPricing).WithOrder(1).BuildRecord()

	s.Run("success: lists active rules of every type when unfiltered", func() {
		s.mockQueries.EXPECT().ListRules(gomock.Any(), (*rule.Type)(nil), true).
			Return([]rule.Record{slot, saturday}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rules", nil, "")

		var body []resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(slot.ID, body[0].ID)
		s.Equal("time_slot", body[0].Type)
		s.Equal("08:00", *body[0].StartTime)
		s.Equal("day_pricing", body[1].Type)
		s.Equal("15.00", body[1].PriceModifier)
		s.Equal("percentage", body[1].ModifierType)
		s.Equal(6, *body[1].DayOfWeek)
	})

	s.Run("success: passes type and activeOnly filters", func() {
		s.mockQueries.EXPECT().ListRules(gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ context.Context, t *rule.Type, _ bool) ([]rule.Record, error) {
				s.Require().NotNil(t)
				s.Equal(rule.TypeDayPricing, *t)
				return []rule.Record{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rules?type=day_pricing&activeOnly=true", nil, "")

		var body []resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("success: activeOnly defaults to true when only type is given", func() {
		ruleType := rule.TypeTimeSlot
		s.mockQueries.EXPECT().ListRules(gomock.Any(), &ruleType, true).
			Return([]rule.Record{slot}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rules?type=time_slot", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: activeOnly=false includes inactive rules", func() {
		s.mockQueries.EXPECT().ListRules(gomock.Any(), (*rule.Type)(nil), false).
			Return([]rule.Record{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rules?activeOnly=false", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rules?type=happy_hour", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 503 when the store is down", func() {
		s.mockQueries.EXPECT().ListRules(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, shared.MarkUnavailable(errors.New("connection reset"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rules", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RuleHandlerTestSuite) TestCreate() {
	url := "/admin/rules"
	reqBody := surchargeRequest()
	created := builder.NewRuleBuilder(rule.TypeTimeSurcharge).WithOrder(2).BuildRecord()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.RuleInput) (*rule.Record, error) {
				s.Equal(rule.TypeTimeSurcharge, in.Type)
				s.Equal("06:00", *in.StartTime)
				s.True(in.PriceModifier.Equal(decimal.NewFromInt(5)))
				s.True(in.IsActive, "rules are active unless stated")
				s.Equal(2, in.DisplayOrder)
				return &created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID, body.ID)
		s.Equal("5.00", body.PriceModifier)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/admin/rules/" + created.ID.String()})
	})

	s.Run("success: inactive rule when isActive is false", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.RuleInput) (*rule.Record, error) {
				s.False(in.IsActive)
				return &created, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("isActive", false))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: ruleType", mutate: testutil.Field("ruleType", nil)},
			{name: "missing field: label", mutate: testutil.Field("label", nil)},
			{name: "negative displayOrder", mutate: testutil.Field("displayOrder", -1)},
			{name: "displayOrder beyond int32", mutate: testutil.Field("displayOrder", 2147483648)},
			{name: "priceModifier not a number", mutate: testutil.Field("priceModifier", "five")},
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
				name:           "overnight window",
				err:            errs.Mark(rule.ErrOvernightWindow, commands.ErrInvalidRule),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid scheduling rule",
			},
			{
				name:           "read-only snapshot",
				err:            shared.ErrReadOnlyStore,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "read-only",
			},
			{
				name:           "database failure",
				err:            errs.Mark(errors.New("insert failed"), errs.ErrDatabaseOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
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

// ================================================================================
// TestUpdate
// ================================================================================

func (s *RuleHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/admin/rules/" + id.String()
	updated := builder.NewRuleBuilder(rule.TypeTimeSurcharge).WithID(id).BuildRecord()

	s.Run("success: returns the updated rule", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(&updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, surchargeRequest(), "")

		var body resdto.RuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
	})

	s.Run("error: 400 on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/rules/not-a-uuid", surchargeRequest(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when the rule does not exist", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.Mark(errors.New("no rows"), commands.ErrRuleNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, surchargeRequest(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Scheduling rule not found")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *RuleHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/admin/rules/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the rule does not exist", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrRuleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestReorder
// ================================================================================

func (s *RuleHandlerTestSuite) TestReorder() {
	url := "/admin/rules/reorder"
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Reorder(gomock.Any(), ids).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ReorderRulesRequest{IDs: ids}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on empty id list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"ids": []string{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on duplicate ids", func() {
		dup := []uuid.UUID{ids[0], ids[0]}
		s.mockCommands.EXPECT().Reorder(gomock.Any(), dup).Return(commands.ErrInvalidReorder).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ReorderRulesRequest{IDs: dup}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 when a rule is missing", func() {
		s.mockCommands.EXPECT().Reorder(gomock.Any(), ids).
			Return(errs.Mark(errors.New("0 rows"), commands.ErrRuleNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ReorderRulesRequest{IDs: ids}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
