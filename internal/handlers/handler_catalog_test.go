package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/core/domain"
	portssvc "github.com/SscSPs/piecework_app/internal/core/ports/services"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListSections(ctx context.Context) ([]domain.Section, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Section), args.Error(1)
}
func (m *MockCatalogService) CreateSection(ctx context.Context, req dto.CreateSectionRequest, actorID string) (*domain.Section, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Section), args.Error(1)
}
func (m *MockCatalogService) UpdateSection(ctx context.Context, sectionID string, req dto.UpdateSectionRequest, actorID string) (*domain.Section, error) {
	args := m.Called(ctx, sectionID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Section), args.Error(1)
}
func (m *MockCatalogService) DeleteSection(ctx context.Context, sectionID string, actorID string) error {
	args := m.Called(ctx, sectionID, actorID)
	return args.Error(0)
}
func (m *MockCatalogService) ListItems(ctx context.Context, sectionID string) ([]domain.Item, error) {
	args := m.Called(ctx, sectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockCatalogService) CreateItem(ctx context.Context, req dto.CreateItemRequest, actorID string) (*domain.Item, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockCatalogService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, actorID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockCatalogService) DeleteItem(ctx context.Context, itemID string, actorID string) error {
	args := m.Called(ctx, itemID, actorID)
	return args.Error(0)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Mock WorkerService ---
type MockWorkerService struct {
	mock.Mock
}

func (m *MockWorkerService) GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerService) ListWorkers(ctx context.Context, limit, offset int) ([]domain.Worker, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}
func (m *MockWorkerService) CreateWorker(ctx context.Context, req dto.CreateWorkerRequest, actorID string) (*domain.Worker, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerService) UpdateWorker(ctx context.Context, workerID string, req dto.UpdateWorkerRequest, actorID string) (*domain.Worker, error) {
	args := m.Called(ctx, workerID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerService) DeleteWorker(ctx context.Context, workerID string, actorID string) error {
	args := m.Called(ctx, workerID, actorID)
	return args.Error(0)
}

var _ portssvc.WorkerSvcFacade = (*MockWorkerService)(nil)

var catalogTime = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func sampleSection(name string) *domain.Section {
	return &domain.Section{
		SectionID:   "s-1",
		Name:        name,
		Owner:       domain.OwnerRef{UserID: "manager-1", Name: "Meena"},
		AuditFields: domain.NewAuditFields("manager-1", catalogTime),
	}
}

func sampleItem() *domain.Item {
	return &domain.Item{
		ItemID: "i-1", Name: "Collar", Rate: decimal.RequireFromString("12.5"), SectionID: "s-1",
		AuditFields: domain.NewAuditFields("manager-1", catalogTime),
	}
}

// --- Section tests ---
func (suite *HandlersTestSuite) TestCreateSection() {
	suite.catalogSvc.On("CreateSection", mock.Anything, dto.CreateSectionRequest{Name: "Stitching"}, suite.managerID).
		Return(sampleSection("Stitching"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/sections", suite.managerToken, map[string]any{"name": "Stitching"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SectionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("s-1", resp.SectionID)
	suite.Equal("manager-1", resp.User.UserID)
	suite.catalogSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestUpdateSection_IDFromQuery() {
	suite.catalogSvc.On("UpdateSection", mock.Anything, "s-1", mock.MatchedBy(func(req dto.UpdateSectionRequest) bool {
		return req.Name != nil && *req.Name == "Cutting"
	}), suite.managerID).Return(sampleSection("Cutting"), nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/sections?id=s-1", suite.managerToken, map[string]any{"name": "Cutting"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Cutting")
	suite.catalogSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestUpdateSection_NotFound() {
	suite.catalogSvc.On("UpdateSection", mock.Anything, "missing", mock.Anything, suite.managerID).
		Return(nil, apperrors.NewNotFoundError("section missing not found")).Once()

	w := suite.do(http.MethodPut, "/api/v1/sections", suite.managerToken, map[string]any{"id": "missing", "name": "Cutting"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "section missing not found")
}

func (suite *HandlersTestSuite) TestDeleteSection_IDFromBody() {
	suite.catalogSvc.On("DeleteSection", mock.Anything, "s-1", suite.managerID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/sections?id=ignored", suite.managerToken, map[string]any{"id": "s-1"})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.catalogSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestDeleteSection_NotFound() {
	suite.catalogSvc.On("DeleteSection", mock.Anything, "missing", suite.managerID).
		Return(apperrors.NewNotFoundError("section missing not found")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/sections?id=missing", suite.managerToken, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteSection_MalformedBody() {
	w := suite.doRaw(http.MethodDelete, "/api/v1/sections?id=s-1", suite.managerToken, []byte(`{"id":`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.catalogSvc.AssertNotCalled(suite.T(), "DeleteSection", mock.Anything, mock.Anything, mock.Anything)
}

// --- Item tests ---
func (suite *HandlersTestSuite) TestListItems_SectionFilter() {
	suite.catalogSvc.On("ListItems", mock.Anything, "s-1").Return([]domain.Item{*sampleItem()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/items?section=s-1", suite.managerToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.True(resp[0].Rate.Equal(decimal.RequireFromString("12.5")))
}

func (suite *HandlersTestSuite) TestCreateItem_UnknownSection() {
	suite.catalogSvc.On("CreateItem", mock.Anything, mock.AnythingOfType("dto.CreateItemRequest"), suite.managerID).
		Return(nil, apperrors.NewValidationError("section s-9 does not exist")).Once()

	w := suite.do(http.MethodPost, "/api/v1/items", suite.managerToken, map[string]any{
		"sectionID": "s-9", "name": "Collar", "rate": "12.5",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "s-9")
}

func (suite *HandlersTestSuite) TestUpdateItem_IDFromQuery() {
	suite.catalogSvc.On("UpdateItem", mock.Anything, "i-1", mock.MatchedBy(func(req dto.UpdateItemRequest) bool {
		return req.Rate != nil && req.Rate.Equal(decimal.NewFromInt(15))
	}), suite.managerID).Return(sampleItem(), nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/items?id=i-1", suite.managerToken, map[string]any{"rate": "15"})

	suite.Equal(http.StatusOK, w.Code)
	suite.catalogSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestDeleteItem_MissingID() {
	w := suite.do(http.MethodDelete, "/api/v1/items", suite.managerToken, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.catalogSvc.AssertNotCalled(suite.T(), "DeleteItem", mock.Anything, mock.Anything, mock.Anything)
}

// --- Worker tests ---
func (suite *HandlersTestSuite) TestCreateWorker() {
	req := dto.CreateWorkerRequest{Name: "Ravi", Lastname: "Kumar", MobileNo: "9800000000"}
	suite.workerSvc.On("CreateWorker", mock.Anything, req, suite.managerID).Return(&domain.Worker{
		WorkerID: "w-1", Name: "Ravi", Lastname: "Kumar", MobileNo: "9800000000",
		AuditFields: domain.NewAuditFields("manager-1", catalogTime),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/workers", suite.managerToken, map[string]any{
		"name": "Ravi", "lastname": "Kumar", "mobileNo": "9800000000",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.WorkerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("w-1", resp.WorkerID)
}

func (suite *HandlersTestSuite) TestListWorkers_Paging() {
	suite.workerSvc.On("ListWorkers", mock.Anything, 10, 20).Return([]domain.Worker{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/workers?limit=10&offset=20", suite.managerToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.workerSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestGetWorker_NotFound() {
	suite.workerSvc.On("GetWorkerByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("worker missing not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/workers/missing", suite.managerToken, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteWorker() {
	suite.workerSvc.On("DeleteWorker", mock.Anything, "w-1", suite.managerID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/workers/w-1", suite.managerToken, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.workerSvc.AssertExpectations(suite.T())
}
