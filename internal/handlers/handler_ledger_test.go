package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/core/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/handlers"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/SscSPs/finance_ledger/internal/platform/clock"
	"github.com/SscSPs/finance_ledger/internal/platform/config"
	"github.com/SscSPs/finance_ledger/internal/repositories/memory"
	"github.com/SscSPs/finance_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Initialize(ctx context.Context, admin domain.Identity) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}
func (m *MockLedgerService) IsAdmin(ctx context.Context, user domain.Identity) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}
func (m *MockLedgerService) AddAsset(ctx context.Context, user domain.Identity, assetType string, amount decimal.Decimal, description string) error {
	args := m.Called(ctx, user, assetType, amount, description)
	return args.Error(0)
}
func (m *MockLedgerService) GetAssets(ctx context.Context, user domain.Identity) ([]domain.Asset, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}
func (m *MockLedgerService) RecordTransaction(ctx context.Context, user domain.Identity, transactionType string, amount decimal.Decimal, description string) error {
	args := m.Called(ctx, user, transactionType, amount, description)
	return args.Error(0)
}
func (m *MockLedgerService) GetTransactions(ctx context.Context, user domain.Identity) ([]domain.Transaction, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) CreateGoal(ctx context.Context, user domain.Identity, name string, targetAmount decimal.Decimal, deadline uint64) error {
	args := m.Called(ctx, user, name, targetAmount, deadline)
	return args.Error(0)
}
func (m *MockLedgerService) UpdateGoalProgress(ctx context.Context, user domain.Identity, goalIndex uint32, amountAdded decimal.Decimal) error {
	args := m.Called(ctx, user, goalIndex, amountAdded)
	return args.Error(0)
}
func (m *MockLedgerService) GetGoals(ctx context.Context, user domain.Identity) ([]domain.Goal, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}
func (m *MockLedgerService) CalculateNetWorth(ctx context.Context, user domain.Identity) (decimal.Decimal, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) GetSummary(ctx context.Context, user domain.Identity) (*domain.LedgerSummary, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSummary), args.Error(1)
}

const (
	aliceID = domain.Identity("GALICE")
	bobID   = domain.Identity("GBOB")
)

func testConfig() *config.Config {
	return &config.Config{
		IsProduction:      true,
		JWTSecret:         "handler-test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finance-ledger-test",
		RateLimit:         "1000-M",
	}
}

func newRouter(t *testing.T, cfg *config.Config, ledger portssvc.LedgerSvcFacade, apiKeys map[string]string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	container := &portssvc.ServiceContainer{
		Ledger:             ledger,
		TokenService:       services.NewTokenService(cfg),
		GoogleOAuthHandler: services.NewGoogleOAuthHandlerService(cfg),
		APIKeys:            services.NewAPIKeyService(apiKeys),
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container, nil))
	return r
}

func bearer(t *testing.T, cfg *config.Config, identity domain.Identity) string {
	t.Helper()
	token, err := utils.GenerateJWT(identity.String(), cfg.JWTSecret, time.Hour, cfg.JWTIssuer)
	require.NoError(t, err)
	return "Bearer " + token
}

func provenAs(identity domain.Identity) interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		proven, ok := middleware.GetProvenIdentity(ctx)
		return ok && proven == identity
	})
}

func amountOf(v int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(v))
	})
}

// --- Test Suite Setup ---

type LedgerHandlerTestSuite struct {
	suite.Suite
	cfg        *config.Config
	mockLedger *MockLedgerService
	router     *gin.Engine
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	suite.cfg = testConfig()
	suite.mockLedger = new(MockLedgerService)

	hash, err := utils.HashSecret("machine-secret")
	suite.Require().NoError(err)
	suite.router = newRouter(suite.T(), suite.cfg, suite.mockLedger, map[string]string{"GBOB": hash})
}

func (suite *LedgerHandlerTestSuite) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)
	return rr
}

func (suite *LedgerHandlerTestSuite) asAlice() map[string]string {
	return map[string]string{"Authorization": bearer(suite.T(), suite.cfg, aliceID)}
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestHealth() {
	rr := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, rr.Code)
	suite.Equal("OK", rr.Body.String())
}

func (suite *LedgerHandlerTestSuite) TestAddAsset_Success() {
	suite.mockLedger.On("AddAsset", provenAs(aliceID), aliceID, "cash", amountOf(5000), "Savings account").Return(nil).Once()
	suite.mockLedger.On("GetAssets", mock.Anything, aliceID).Return([]domain.Asset{
		{AssetType: "cash", Amount: decimal.NewFromInt(5000), Description: "Savings account"},
	}, nil).Once()

	rr := suite.do(http.MethodPost, "/api/v1/users/GALICE/assets",
		`{"assetType":"cash","amount":5000,"description":"Savings account"}`, suite.asAlice())

	suite.Equal(http.StatusCreated, rr.Code)
	var resp []dto.AssetResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("5000", resp[0].Amount)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestAddAsset_LargeAmountAsString() {
	suite.mockLedger.On("AddAsset", mock.Anything, aliceID, "bond", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(domain.MaxAmount)
	}), "").Return(nil).Once()
	suite.mockLedger.On("GetAssets", mock.Anything, aliceID).Return([]domain.Asset{
		{AssetType: "bond", Amount: domain.MaxAmount},
	}, nil).Once()

	rr := suite.do(http.MethodPost, "/api/v1/users/GALICE/assets",
		`{"assetType":"bond","amount":"170141183460469231731687303715884105727"}`, suite.asAlice())

	suite.Equal(http.StatusCreated, rr.Code)
	suite.Contains(rr.Body.String(), `"170141183460469231731687303715884105727"`)
}

func (suite *LedgerHandlerTestSuite) TestAddAsset_InvalidAmount() {
	for _, body := range []string{
		`{"assetType":"cash","amount":12.5}`,
		`{"assetType":"cash","amount":"170141183460469231731687303715884105728"}`,
		`{"assetType":"cash","amount":1e100000000}`,
		`{"assetType":"cash","amount":"1e100000000"}`,
		`{"assetType":"cash"}`,
		`not json`,
	} {
		rr := suite.do(http.MethodPost, "/api/v1/users/GALICE/assets", body, suite.asAlice())
		suite.Equal(http.StatusBadRequest, rr.Code, body)
	}
	suite.mockLedger.AssertNotCalled(suite.T(), "AddAsset", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestAddAsset_Unauthorized() {
	suite.mockLedger.On("AddAsset", mock.Anything, bobID, "cash", amountOf(1), "").
		Return(apperrors.ErrUnauthorized).Once()

	rr := suite.do(http.MethodPost, "/api/v1/users/GBOB/assets", `{"assetType":"cash","amount":1}`, suite.asAlice())

	suite.Equal(http.StatusUnauthorized, rr.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "GetAssets", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestInvalidBearerRejected() {
	rr := suite.do(http.MethodGet, "/api/v1/users/GALICE/assets", "", map[string]string{"Authorization": "Bearer nope"})
	suite.Equal(http.StatusUnauthorized, rr.Code)

	rr = suite.do(http.MethodGet, "/api/v1/users/GALICE/assets", "", map[string]string{"Authorization": "Token abc"})
	suite.Equal(http.StatusUnauthorized, rr.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetAssets_EmptyIsArray() {
	suite.mockLedger.On("GetAssets", mock.Anything, aliceID).Return([]domain.Asset{}, nil).Once()

	rr := suite.do(http.MethodGet, "/api/v1/users/GALICE/assets", "", nil)

	suite.Equal(http.StatusOK, rr.Code)
	suite.JSONEq(`[]`, rr.Body.String())
}

func (suite *LedgerHandlerTestSuite) TestAPIKeyProvesIdentity() {
	suite.mockLedger.On("RecordTransaction", provenAs(bobID), bobID, "income", amountOf(3000), "Salary").Return(nil).Once()
	suite.mockLedger.On("GetTransactions", mock.Anything, bobID).Return([]domain.Transaction{
		{Timestamp: 1234567890, TransactionType: "income", Amount: decimal.NewFromInt(3000), Description: "Salary"},
	}, nil).Once()

	rr := suite.do(http.MethodPost, "/api/v1/users/GBOB/transactions",
		`{"transactionType":"income","amount":"3000","description":"Salary"}`,
		map[string]string{middleware.APIKeyHeader: "GBOB.machine-secret"})

	suite.Equal(http.StatusCreated, rr.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(uint64(1234567890), resp[0].Timestamp)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestInitialize() {
	suite.mockLedger.On("Initialize", provenAs(aliceID), aliceID).Return(nil).Once()
	rr := suite.do(http.MethodPost, "/api/v1/ledger/initialize", `{"admin":"GALICE"}`, suite.asAlice())
	suite.Equal(http.StatusCreated, rr.Code)
	suite.JSONEq(`{"admin":"GALICE"}`, rr.Body.String())

	suite.mockLedger.On("Initialize", mock.Anything, aliceID).Return(apperrors.ErrAlreadyInitialized).Once()
	rr = suite.do(http.MethodPost, "/api/v1/ledger/initialize", `{"admin":"GALICE"}`, suite.asAlice())
	suite.Equal(http.StatusConflict, rr.Code)
	suite.Contains(rr.Body.String(), "already initialized")
}

func (suite *LedgerHandlerTestSuite) TestIsAdmin() {
	suite.mockLedger.On("IsAdmin", mock.Anything, aliceID).Return(true, nil).Once()
	rr := suite.do(http.MethodGet, "/api/v1/ledger/admins/GALICE", "", nil)
	suite.Equal(http.StatusOK, rr.Code)
	suite.JSONEq(`{"identity":"GALICE","isAdmin":true}`, rr.Body.String())

	suite.mockLedger.On("IsAdmin", mock.Anything, bobID).Return(false, apperrors.ErrNotInitialized).Once()
	rr = suite.do(http.MethodGet, "/api/v1/ledger/admins/GBOB", "", nil)
	suite.Equal(http.StatusPreconditionFailed, rr.Code)
}

func (suite *LedgerHandlerTestSuite) TestCreateGoal() {
	suite.mockLedger.On("CreateGoal", provenAs(aliceID), aliceID, "Emergency Fund", amountOf(5000), uint64(1672531200)).Return(nil).Once()
	suite.mockLedger.On("GetGoals", mock.Anything, aliceID).Return([]domain.Goal{
		{Name: "Emergency Fund", TargetAmount: decimal.NewFromInt(5000), CurrentAmount: decimal.Zero, Deadline: 1672531200},
	}, nil).Once()

	rr := suite.do(http.MethodPost, "/api/v1/users/GALICE/goals",
		`{"name":"Emergency Fund","targetAmount":5000,"deadline":1672531200}`, suite.asAlice())

	suite.Equal(http.StatusCreated, rr.Code)
	suite.JSONEq(`[{"index":0,"name":"Emergency Fund","targetAmount":"5000","currentAmount":"0","deadline":1672531200}]`, rr.Body.String())
}

func (suite *LedgerHandlerTestSuite) TestUpdateGoalProgress() {
	suite.mockLedger.On("UpdateGoalProgress", provenAs(aliceID), aliceID, uint32(0), amountOf(1000)).Return(nil).Once()
	suite.mockLedger.On("GetGoals", mock.Anything, aliceID).Return([]domain.Goal{
		{Name: "Emergency Fund", TargetAmount: decimal.NewFromInt(5000), CurrentAmount: decimal.NewFromInt(1000), Deadline: 1672531200},
	}, nil).Once()

	rr := suite.do(http.MethodPost, "/api/v1/users/GALICE/goals/0/progress", `{"amountAdded":1000}`, suite.asAlice())

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.GoalResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal("1000", resp.CurrentAmount)
}

func (suite *LedgerHandlerTestSuite) TestUpdateGoalProgress_Errors() {
	tests := []struct {
		name   string
		index  string
		err    error
		status int
	}{
		{"index out of range", "999", apperrors.ErrIndexOutOfRange, http.StatusBadRequest},
		{"no goals", "0", apperrors.ErrMissingGoals, http.StatusNotFound},
		{"overflow", "1", apperrors.ErrArithmeticOverflow, http.StatusUnprocessableEntity},
		{"unauthorized", "2", apperrors.ErrUnauthorized, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockLedger.On("UpdateGoalProgress", mock.Anything, aliceID, mock.Anything, amountOf(5)).Return(tt.err).Once()
			rr := suite.do(http.MethodPost, "/api/v1/users/GALICE/goals/"+tt.index+"/progress", `{"amountAdded":5}`, suite.asAlice())
			suite.Equal(tt.status, rr.Code)
		})
	}
}

func (suite *LedgerHandlerTestSuite) TestUpdateGoalProgress_BadIndex() {
	for _, index := range []string{"abc", "-1", "4294967296"} {
		rr := suite.do(http.MethodPost, "/api/v1/users/GALICE/goals/"+index+"/progress", `{"amountAdded":5}`, suite.asAlice())
		suite.Equal(http.StatusBadRequest, rr.Code, index)
	}
	suite.mockLedger.AssertNotCalled(suite.T(), "UpdateGoalProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestNetWorth() {
	suite.mockLedger.On("CalculateNetWorth", mock.Anything, aliceID).Return(decimal.NewFromInt(16000), nil).Once()
	rr := suite.do(http.MethodGet, "/api/v1/users/GALICE/net-worth", "", nil)
	suite.Equal(http.StatusOK, rr.Code)
	suite.JSONEq(`{"owner":"GALICE","netWorth":"16000"}`, rr.Body.String())

	suite.mockLedger.On("CalculateNetWorth", mock.Anything, bobID).Return(decimal.Zero, apperrors.ErrArithmeticOverflow).Once()
	rr = suite.do(http.MethodGet, "/api/v1/users/GBOB/net-worth", "", nil)
	suite.Equal(http.StatusUnprocessableEntity, rr.Code)
}

func (suite *LedgerHandlerTestSuite) TestSummary() {
	suite.mockLedger.On("GetSummary", mock.Anything, aliceID).Return(&domain.LedgerSummary{
		Owner:    aliceID,
		Assets:   []domain.Asset{{AssetType: "cash", Amount: decimal.NewFromInt(7), Description: "coins"}},
		NetWorth: decimal.NewFromInt(7),
	}, nil).Once()

	rr := suite.do(http.MethodGet, "/api/v1/users/GALICE/summary", "", nil)

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.LedgerSummaryResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal("7", resp.NetWorth)
	suite.Len(resp.Assets, 1)
	suite.NotNil(resp.Transactions)
	suite.NotNil(resp.Goals)
}

func (suite *LedgerHandlerTestSuite) TestInternalErrorsAreHidden() {
	suite.mockLedger.On("GetGoals", mock.Anything, aliceID).Return(nil, assert.AnError).Once()

	rr := suite.do(http.MethodGet, "/api/v1/users/GALICE/goals", "", nil)

	suite.Equal(http.StatusInternalServerError, rr.Code)
	suite.NotContains(rr.Body.String(), assert.AnError.Error())
}

func (suite *LedgerHandlerTestSuite) TestIssueToken() {
	rr := suite.do(http.MethodPost, "/api/v1/auth/token", "", map[string]string{middleware.APIKeyHeader: "GBOB.machine-secret"})
	suite.Require().Equal(http.StatusOK, rr.Code)

	var resp dto.TokenResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal("GBOB", resp.Identity)

	claims, err := utils.ParseAndValidateJWT(resp.Token, suite.cfg.JWTSecret, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	suite.Equal("GBOB", claims.Subject)

	rr = suite.do(http.MethodPost, "/api/v1/auth/token", "", map[string]string{middleware.APIKeyHeader: "GBOB.wrong"})
	suite.Equal(http.StatusUnauthorized, rr.Code)
}

func (suite *LedgerHandlerTestSuite) TestExchangeCode_RequiresCode() {
	rr := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code", `{}`, nil)
	suite.Equal(http.StatusBadRequest, rr.Code)
}

func (suite *LedgerHandlerTestSuite) TestGoogleLogin_RedirectsWithState() {
	rr := suite.do(http.MethodGet, "/api/v1/auth/google/login", "", nil)
	suite.Require().Equal(http.StatusTemporaryRedirect, rr.Code)

	var state string
	for _, ck := range rr.Result().Cookies() {
		if ck.Name == handlers.OAuthStateCookie {
			state = ck.Value
			suite.True(ck.HttpOnly)
		}
	}
	suite.Require().NotEmpty(state)

	location, err := url.Parse(rr.Header().Get("Location"))
	suite.Require().NoError(err)
	suite.Equal("accounts.google.com", location.Host)
	suite.Equal(state, location.Query().Get("state"))
}

func (suite *LedgerHandlerTestSuite) TestExchangeCode_StateMismatch() {
	body := `{"code":"auth-code","state":"from-client"}`

	rr := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code", body, nil)
	suite.Equal(http.StatusBadRequest, rr.Code, "state without cookie")

	rr = suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code", body,
		map[string]string{"Cookie": handlers.OAuthStateCookie + "=from-login"})
	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Contains(rr.Body.String(), "state")
}

// Run the test suite
func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

// TestLedgerAPI_EndToEnd drives the real service over the in-memory store.
func TestLedgerAPI_EndToEnd(t *testing.T) {
	cfg := testConfig()
	ledger := services.NewLedgerService(memory.NewStateRepository(), services.WithClock(clock.NewFixedClock(1234567890)))
	router := newRouter(t, cfg, ledger, nil)

	send := func(method, path, body, auth string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}
	alice := bearer(t, cfg, aliceID)

	rr := send(http.MethodPost, "/api/v1/users/GALICE/assets", `{"assetType":"cash","amount":5000}`, "")
	require.Equal(t, http.StatusUnauthorized, rr.Code, "anonymous mutation")

	for _, amount := range []string{"5000", "10000", "3000", "-2000"} {
		rr = send(http.MethodPost, "/api/v1/users/GALICE/assets", `{"assetType":"cash","amount":`+amount+`}`, alice)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}

	rr = send(http.MethodPost, "/api/v1/users/GBOB/assets", `{"assetType":"cash","amount":1}`, alice)
	require.Equal(t, http.StatusUnauthorized, rr.Code, "alice cannot write bob's ledger")

	rr = send(http.MethodGet, "/api/v1/users/GALICE/net-worth", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"owner":"GALICE","netWorth":"16000"}`, rr.Body.String())

	rr = send(http.MethodPost, "/api/v1/users/GALICE/goals/0/progress", `{"amountAdded":1}`, alice)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = send(http.MethodPost, "/api/v1/users/GALICE/transactions", `{"transactionType":"income","amount":3000}`, alice)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"timestamp":1234567890`)

	rr = send(http.MethodGet, "/api/v1/users/GBOB/assets", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
