//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"token-storefront/internal/domain/payment"
	"token-storefront/internal/handler/api"
	resdto "token-storefront/internal/handler/dto/response"
	"token-storefront/internal/handler/middleware"
	"token-storefront/internal/usecase"
	"token-storefront/internal/usecase/commands"
	"token-storefront/internal/usecase/queries"
	"token-storefront/tests/common/builder"
	"token-storefront/tests/common/httptest"
	"token-storefront/tests/common/testutil"
	commandsmock "token-storefront/tests/mock/commands"
	queriesmock "token-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockTokenQueries
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	s.router = httptest.NewTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTokenQueries(s.mockCtrl)
	handler := api.NewPaymentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/payments/initiate", handler.Initiate)
	s.router.GET("/api/payments/:referenceId/status", fakeAuth, handler.Status)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// fakeAuth stands in for RequireAuth when a bearer header is present.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	middleware.SetPrincipal(c, usecase.Principal{UserID: "u1", Email: "buyer@example.com"})
	c.Next()
}

func (s *PaymentHandlerTestSuite) TestInitiate_Success() {
	body := builder.NewPurchaseBuilder().BuildBody()

	s.mockCommands.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req payment.PurchaseRequest) (*commands.InitiatePaymentResult, error) {
			s.True(req.Amount.Valid)
			s.True(req.Amount.Decimal.Equal(decimal.RequireFromString("25.00")))
			s.Equal("u1", req.UserID)
			s.Equal("buyer@example.com", req.UserEmail)
			return &commands.InitiatePaymentResult{
				RedirectURL: "https://pay.example.com/checkout/abc",
				ReferenceID: "CS-u1-1700000000000",
			}, nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/initiate", body, "")

	var res resdto.InitiatePaymentResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	s.Equal("https://pay.example.com/checkout/abc", res.RedirectURL)
	s.Regexp(`^CS-u1-\d+$`, res.ReferenceID)
}

func (s *PaymentHandlerTestSuite) TestInitiate_StringNumbersAccepted() {
	body := testutil.DtoMap(s.T(), builder.NewPurchaseBuilder().BuildBody(),
		testutil.Field("amount", "12.50"),
		testutil.Field("tokens", "100"),
	)

	s.mockCommands.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req payment.PurchaseRequest) (*commands.InitiatePaymentResult, error) {
			s.True(req.Amount.Decimal.Equal(decimal.RequireFromString("12.5")))
			s.True(req.Tokens.Decimal.Equal(decimal.NewFromInt(100)))
			return &commands.InitiatePaymentResult{RedirectURL: "https://pay.example.com/x", ReferenceID: "CS-u1-1"}, nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/initiate", body, "")

	s.Equal(http.StatusOK, w.Code)
}

func (s *PaymentHandlerTestSuite) TestInitiate_Errors() {
	testCases := []struct {
		name       string
		err        error
		expectCode int
		expectErr  string
		details    string
	}{
		{name: "unsupported currency", err: payment.ErrUnsupportedCurrency, expectCode: http.StatusUnprocessableEntity, expectErr: "unsupported_currency"},
		{name: "below minimum", err: payment.ErrMinAmount, expectCode: http.StatusUnprocessableEntity, expectErr: "min_amount_10"},
		{name: "invalid tokens", err: payment.ErrInvalidTokens, expectCode: http.StatusUnprocessableEntity, expectErr: "invalid_tokens"},
		{name: "missing user", err: payment.ErrUserRequired, expectCode: http.StatusUnauthorized, expectErr: "user_required"},
		{
			name:       "processor rejected",
			err:        payment.NewGatewayError(payment.CodeGatewayError, http.StatusBadRequest, []byte(`{"message":"bad amount"}`), nil),
			expectCode: http.StatusBadRequest,
			expectErr:  "transfermit_error",
			details:    `{"message":"bad amount"}`,
		},
		{
			name:       "processor unreachable",
			err:        payment.NewGatewayError(payment.CodeGatewayError, http.StatusBadGateway, nil, errors.New("timeout")),
			expectCode: http.StatusBadGateway,
			expectErr:  "transfermit_error",
			details:    `{}`,
		},
		{
			name:       "missing redirect",
			err:        payment.NewGatewayError(payment.CodeMissingRedirectURL, http.StatusInternalServerError, nil, nil),
			expectCode: http.StatusInternalServerError,
			expectErr:  "missing_redirect_url",
			details:    `{}`,
		},
		{name: "unexpected", err: errors.New("boom"), expectCode: http.StatusInternalServerError, expectErr: "internal_error"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/initiate", builder.NewPurchaseBuilder().BuildBody(), "")

			body := httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectErr)
			if tc.details != "" {
				s.JSONEq(tc.details, string(body.Details))
			}
		})
	}
}

func (s *PaymentHandlerTestSuite) TestInitiate_LooseTypesReachValidation() {
	testCases := []struct {
		name         string
		body         string
		expectCur    string
		expectUserID string
	}{
		{name: "numeric currency", body: `{"amount":25,"currency":123,"tokens":1,"user":{"id":"u1","email":"a@b.com"}}`, expectCur: "123", expectUserID: "u1"},
		{name: "object currency", body: `{"amount":25,"currency":{},"tokens":1,"user":{"id":"u1","email":"a@b.com"}}`, expectCur: "{}", expectUserID: "u1"},
		{name: "null currency", body: `{"amount":25,"currency":null,"tokens":1,"user":{"id":"u1","email":"a@b.com"}}`, expectCur: "", expectUserID: "u1"},
		{name: "string user", body: `{"amount":25,"currency":"EUR","tokens":1,"user":"u1"}`, expectCur: "EUR"},
		{name: "array user", body: `{"amount":25,"currency":"EUR","tokens":1,"user":["u1"]}`, expectCur: "EUR"},
		{name: "numeric user id", body: `{"amount":25,"currency":"EUR","tokens":1,"user":{"id":42,"email":"a@b.com"}}`, expectCur: "EUR", expectUserID: "42"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, req payment.PurchaseRequest) (*commands.InitiatePaymentResult, error) {
					s.Equal(tc.expectCur, req.Currency)
					s.Equal(tc.expectUserID, req.UserID)
					return nil, payment.ErrUserRequired
				})

			w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/payments/initiate", []byte(tc.body), nil)

			httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "user_required")
		})
	}
}

func (s *PaymentHandlerTestSuite) TestInitiate_MalformedJSON() {
	w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/payments/initiate", []byte(`{"amount":`), nil)

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid_request")
}

func (s *PaymentHandlerTestSuite) TestStatus() {
	creditedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	s.mockQueries.EXPECT().GetPaymentStatus(gomock.Any(), "u1", "CS-u1-1").Return(&queries.PaymentStatusView{
		ReferenceID: "CS-u1-1",
		Credited:    true,
		Tokens:      50,
		CreditedAt:  &creditedAt,
	}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/CS-u1-1/status", nil, "token")

	var res resdto.PaymentStatusResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	s.True(res.Credited)
	s.Equal(int64(50), res.Tokens)
	s.Require().NotNil(res.CreditedAt)
	s.True(creditedAt.Equal(*res.CreditedAt))
}

func (s *PaymentHandlerTestSuite) TestStatus_RequiresAuth() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/CS-u1-1/status", nil, "")

	s.Equal(http.StatusUnauthorized, w.Code)
}
