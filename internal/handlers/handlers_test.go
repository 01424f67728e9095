package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/core/domain"
	portssvc "github.com/SscSPs/piecework_app/internal/core/ports/services"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/SscSPs/piecework_app/internal/handlers"
	"github.com/SscSPs/piecework_app/internal/platform/config"
	"github.com/SscSPs/piecework_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock WorkRecordService ---
type MockWorkRecordService struct {
	mock.Mock
}

func (m *MockWorkRecordService) CreateRecord(ctx context.Context, req dto.CreateWorkRecordRequest, actorID string) (*domain.WorkRecord, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkRecord), args.Error(1)
}
func (m *MockWorkRecordService) GetRecord(ctx context.Context, recordID string) (*domain.WorkRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkRecord), args.Error(1)
}
func (m *MockWorkRecordService) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateWorkRecordRequest, actorID string) (*domain.WorkRecord, error) {
	args := m.Called(ctx, recordID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkRecord), args.Error(1)
}
func (m *MockWorkRecordService) DeleteRecord(ctx context.Context, recordID string, actorID string) error {
	args := m.Called(ctx, recordID, actorID)
	return args.Error(0)
}
func (m *MockWorkRecordService) FindRecords(ctx context.Context, query dto.WorkRecordQuery) (*domain.RecordPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecordPage), args.Error(1)
}

var _ portssvc.WorkRecordSvcFacade = (*MockWorkRecordService)(nil)

// --- Mock SettlementService ---
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) ApplyPayment(ctx context.Context, recordIDs []string, newStatus domain.PaymentStatus, actorID string) (*domain.SettlementResult, error) {
	args := m.Called(ctx, recordIDs, newStatus, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

var _ portssvc.SettlementSvc = (*MockSettlementService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GenerateReport(ctx context.Context, query dto.WorkRecordQuery) (*domain.Report, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}
func (m *MockReportingService) BuildSelectedReport(ctx context.Context, records []domain.WorkRecord, selectionIDs []string) (*domain.Report, error) {
	args := m.Called(ctx, records, selectionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", time.Time{}, args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Get(2).(time.Time), args.Error(3)
}
func (m *MockAuthService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) CreateUser(ctx context.Context, req dto.CreateUserRequest, actorID string) (*domain.User, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router        *gin.Engine
	cfg           *config.Config
	recordService *MockWorkRecordService
	settlementSvc *MockSettlementService
	reportingSvc  *MockReportingService
	authService   *MockAuthService
	catalogSvc    *MockCatalogService
	workerSvc     *MockWorkerService
	managerToken  string
	adminToken    string
	managerID     string
}

func (suite *HandlersTestSuite) token(userID string, role domain.UserRole) string {
	token, _, err := utils.GenerateJWT(userID, string(role), suite.cfg.JWTSecret, time.Hour, "piecework-test", time.Now())
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		IsProduction:     true,
		JWTSecret:        "test-secret-key-that-is-long-enough",
		Location:         time.UTC,
		CurrencySymbol:   "Rs.",
		DefaultPageLimit: 50,
		MaxPageLimit:     500,
	}
	suite.recordService = new(MockWorkRecordService)
	suite.settlementSvc = new(MockSettlementService)
	suite.reportingSvc = new(MockReportingService)
	suite.authService = new(MockAuthService)
	suite.catalogSvc = new(MockCatalogService)
	suite.workerSvc = new(MockWorkerService)

	suite.router = gin.New()
	err := handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		WorkRecord: suite.recordService,
		Settlement: suite.settlementSvc,
		Reporting:  suite.reportingSvc,
		Auth:       suite.authService,
		Catalog:    suite.catalogSvc,
		Worker:     suite.workerSvc,
	}, nil)
	suite.Require().NoError(err)

	suite.managerID = "manager-1"
	suite.managerToken = suite.token(suite.managerID, domain.RoleManager)
	suite.adminToken = suite.token("admin-1", domain.RoleAdmin)
}

func (suite *HandlersTestSuite) do(method, url, token string, body any) *httptest.ResponseRecorder {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		suite.Require().NoError(err)
	}
	return suite.doRaw(method, url, token, raw)
}

func (suite *HandlersTestSuite) doRaw(method, url, token string, raw []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader(raw))
	if len(raw) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleRecord() *domain.WorkRecord {
	return &domain.WorkRecord{
		RecordID: "r-1", WorkerID: "w-1", WorkerName: "Ravi Kumar",
		SectionID: "s-1", SectionName: "Stitching", ItemID: "i-1", ItemName: "Collar",
		Piece: decimal.NewFromInt(10), ItemRate: decimal.RequireFromString("12.5"), Amount: decimal.NewFromInt(125),
		PaymentStatus: domain.PaymentPending,
		AuditFields:   domain.NewAuditFields("manager-1", time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)),
	}
}

// --- Work record tests ---
func (suite *HandlersTestSuite) TestListRecords_DefaultLimit() {
	suite.recordService.On("FindRecords", mock.Anything, dto.WorkRecordQuery{
		WorkerID: "w-1", PaymentStatus: "PENDING", FromDate: "2024-01-01", ToDate: "2024-01-31", Limit: 50, Offset: 100,
	}).Return(&domain.RecordPage{Records: []domain.WorkRecord{*sampleRecord()}, HasMore: false}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/work_records?worker=w-1&payment_status=PENDING&fromDate=2024-01-01&toDate=2024-01-31&skip=100", suite.managerToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListWorkRecordsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Records, 1)
	suite.False(resp.HasMore)
	suite.True(resp.Total.Equal(decimal.NewFromInt(125)))
	suite.recordService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListRecords_RejectsBadParams() {
	for _, url := range []string{
		"/api/v1/work_records?limit=501",
		"/api/v1/work_records?limit=0",
		"/api/v1/work_records?skip=-1",
		"/api/v1/work_records?payment_status=SETTLED",
		"/api/v1/work_records?fromDate=01-01-2024",
	} {
		w := suite.do(http.MethodGet, url, suite.managerToken, nil)
		suite.Equal(http.StatusBadRequest, w.Code, url)
	}
	suite.recordService.AssertNotCalled(suite.T(), "FindRecords", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListRecords_RequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/work_records", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/work_records", "not-a-jwt", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestCreateRecord_ValidationError() {
	suite.recordService.On("CreateRecord", mock.Anything, mock.AnythingOfType("dto.CreateWorkRecordRequest"), suite.managerID).
		Return(nil, apperrors.NewValidationError("worker w-9 does not exist")).Once()

	w := suite.do(http.MethodPost, "/api/v1/work_records", suite.managerToken, map[string]any{
		"workerID": "w-9", "sectionID": "s-1", "itemID": "i-1", "piece": "3",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "w-9")
}

func (suite *HandlersTestSuite) TestCreateRecord_MissingPiece() {
	w := suite.do(http.MethodPost, "/api/v1/work_records", suite.managerToken, map[string]any{
		"workerID": "w-1", "sectionID": "s-1", "itemID": "i-1",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.recordService.AssertNotCalled(suite.T(), "CreateRecord", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestUpdateRecord_IDFromQuery() {
	updated := sampleRecord()
	suite.recordService.On("UpdateRecord", mock.Anything, "r-1", mock.MatchedBy(func(req dto.UpdateWorkRecordRequest) bool {
		return req.Piece != nil && req.Piece.Equal(decimal.NewFromInt(4))
	}), suite.managerID).Return(updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/work_records?id=r-1", suite.managerToken, map[string]any{"piece": 4})

	suite.Equal(http.StatusOK, w.Code)
	suite.recordService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestUpdateRecord_PaidConflict() {
	suite.recordService.On("UpdateRecord", mock.Anything, "r-1", mock.Anything, suite.managerID).
		Return(nil, apperrors.NewInvalidStateError("work record r-1 is PAID")).Once()

	w := suite.do(http.MethodPut, "/api/v1/work_records", suite.managerToken, map[string]any{"id": "r-1", "piece": 4})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateRecord_MissingID() {
	w := suite.do(http.MethodPut, "/api/v1/work_records", suite.managerToken, map[string]any{"piece": 4})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteRecord() {
	suite.recordService.On("DeleteRecord", mock.Anything, "r-1", suite.managerID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/work_records?id=r-1", suite.managerToken, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.recordService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestGetRecord_NotFound() {
	suite.recordService.On("GetRecord", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundError("work record missing not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/work_records/missing", suite.managerToken, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestGetRecord_StorageErrorIsHidden() {
	suite.recordService.On("GetRecord", mock.Anything, "r-1").Return(nil, apperrors.NewStorageError("select failed", context.DeadlineExceeded)).Once()

	w := suite.do(http.MethodGet, "/api/v1/work_records/r-1", suite.managerToken, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "deadline")
}

// --- Settlement tests ---
func (suite *HandlersTestSuite) TestApplyPayments() {
	paidAt := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	suite.settlementSvc.On("ApplyPayment", mock.Anything, []string{"a", "b", "c"}, domain.PaymentPaid, suite.managerID).
		Return(&domain.SettlementResult{UpdatedCount: 2, UpdatedIDs: []string{"a", "c"}, SkippedIDs: []string{"b"}, PaymentDate: paidAt}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/apply_payments", suite.managerToken, map[string]any{
		"recordIds": []string{"a", "b", "c"}, "payment_status": "PAID",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.SettlementResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.UpdatedCount)
	suite.Equal([]string{"b"}, resp.SkippedIDs)
	suite.True(resp.PaymentDate.Equal(paidAt))
}

func (suite *HandlersTestSuite) TestApplyPayments_EmptyBatch() {
	w := suite.do(http.MethodPost, "/api/v1/apply_payments", suite.managerToken, map[string]any{
		"recordIds": []string{}, "payment_status": "PAID",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.settlementSvc.AssertNotCalled(suite.T(), "ApplyPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Report tests ---
func (suite *HandlersTestSuite) TestReport_CSV() {
	report := domain.BuildReport([]domain.WorkRecord{*sampleRecord()}, nil)
	suite.reportingSvc.On("GenerateReport", mock.Anything, dto.WorkRecordQuery{WorkerID: "w-1"}).Return(&report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports?worker=w-1&format=csv", suite.managerToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	suite.Contains(w.Header().Get("Content-Disposition"), ".csv")
	suite.Contains(w.Body.String(), "Total,,,,,Rs. 125.00")
}

func (suite *HandlersTestSuite) TestReport_UnknownFormat() {
	w := suite.do(http.MethodGet, "/api/v1/reports?format=pdf", suite.managerToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestSelectedReport_JSON() {
	record := sampleRecord()
	report := domain.BuildReport([]domain.WorkRecord{*record}, []string{"r-1"})
	suite.reportingSvc.On("BuildSelectedReport", mock.Anything, mock.MatchedBy(func(records []domain.WorkRecord) bool {
		return len(records) == 1 && records[0].RecordID == "r-1" && records[0].Amount.Equal(decimal.NewFromInt(125))
	}), []string{"r-1"}).Return(&report, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reports/selected", suite.managerToken, dto.SelectedReportRequest{
		Records:   []dto.WorkRecordResponse{dto.ToWorkRecordResponse(record)},
		RecordIDs: []string{"r-1"},
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rows, 1)
	suite.True(resp.Total.Equal(decimal.NewFromInt(125)))
	suite.Equal("Total", resp.TotalRow.Label)
	suite.True(resp.TotalRow.Amount.Equal(decimal.NewFromInt(125)))
	suite.reportingSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestSelectedReport_EmptySelection() {
	report := domain.BuildReport([]domain.WorkRecord{*sampleRecord()}, []string{})
	suite.reportingSvc.On("BuildSelectedReport", mock.Anything, mock.Anything, []string{}).Return(&report, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reports/selected", suite.managerToken, dto.SelectedReportRequest{
		Records:   []dto.WorkRecordResponse{dto.ToWorkRecordResponse(sampleRecord())},
		RecordIDs: []string{},
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp.Rows)
	suite.True(resp.TotalRow.Amount.IsZero())
	suite.reportingSvc.AssertExpectations(suite.T())
}

// --- Auth tests ---
func (suite *HandlersTestSuite) TestLogin() {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	user := &domain.User{UserID: "u-1", Name: "Admin", Username: "admin", Role: domain.RoleAdmin}
	suite.authService.On("Login", mock.Anything, "admin", "secret-pass").Return(user, "signed-token", expires, nil).Once()

	w := suite.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: "admin", Password: "secret-pass"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
	suite.Equal("u-1", resp.User.UserID)
}

func (suite *HandlersTestSuite) TestLogin_BadCredentials() {
	suite.authService.On("Login", mock.Anything, "admin", "wrong").
		Return(nil, "", time.Time{}, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: "admin", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestCreateUser_AdminOnly() {
	body := dto.CreateUserRequest{Name: "New", Username: "newbie", Password: "long-enough", Role: domain.RoleManager}

	w := suite.do(http.MethodPost, "/api/v1/users", suite.managerToken, body)
	suite.Equal(http.StatusForbidden, w.Code)

	suite.authService.On("CreateUser", mock.Anything, body, "admin-1").
		Return(&domain.User{UserID: "u-2", Name: "New", Username: "newbie", Role: domain.RoleManager}, nil).Once()
	w = suite.do(http.MethodPost, "/api/v1/users", suite.adminToken, body)
	suite.Equal(http.StatusCreated, w.Code)
	suite.authService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
