package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danvolchok/budget-tracker-web/internal/dto"
	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/services"
	"github.com/danvolchok/budget-tracker-web/internal/services/service_mocks"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// MerchantHandlerSuite defines the test suite for MerchantHandler
type MerchantHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockMerchantServiceInterface
	mockMetrics *service_mocks.MockMetricsRecorderInterface
	handler     *MerchantHandler
	echo        *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *MerchantHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockMerchantServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewMerchantHandler(s.mockService, s.mockMetrics, "Transactions")

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest runs after each test in the suite
func (s *MerchantHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestMerchantHandlerSuite runs the test suite
func TestMerchantHandlerSuite(t *testing.T) {
	suite.Run(t, new(MerchantHandlerSuite))
}

// Helper method to create a test context with an optional JSON body
func (s *MerchantHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return c, rec
}

// Test GetGroups functionality
func (s *MerchantHandlerSuite) TestGetGroups_Success() {
	expectedView := &models.MerchantGroupView{
		Groups: []models.MerchantGroup{
			{Name: "Uber Eats", Members: []models.MerchantCount{{Raw: "UBER *EATS TORONTO"}, {Raw: "UBER* EATS"}}, Count: 7, Total: decimal.NewFromFloat(212.40)},
		},
		Suggestions: []models.MergeSuggestion{
			{Left: "Tim Hortons", Right: "Tim Hortons #204", Distance: 5},
		},
		SessionOpen: false,
	}

	s.mockService.EXPECT().
		ProposeGroups(gomock.Any(), "Transactions").
		Return(expectedView, nil)

	c, rec := s.createContext(http.MethodGet, "/api/v1/merchants/groups", nil)

	err := s.handler.GetGroups(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var view models.MerchantGroupView
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &view))
	s.Len(view.Groups, 1)
	s.Equal("Uber Eats", view.Groups[0].Name)
	s.Equal(7, view.Groups[0].Count)
	s.Len(view.Suggestions, 1)
	s.False(view.SessionOpen)
}

func (s *MerchantHandlerSuite) TestGetGroups_SheetNotFound() {
	s.mockService.EXPECT().
		ProposeGroups(gomock.Any(), "Missing").
		Return(nil, fmt.Errorf("read Missing: %w", sheets.ErrSheetNotFound))

	c, rec := s.createContext(http.MethodGet, "/api/v1/merchants/groups?sheet=Missing", nil)

	err := s.handler.GetGroups(c)
	s.NoError(err) // Handler returns nil, error is written to response
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SHEET_005")
}

// Test StartSession functionality
func (s *MerchantHandlerSuite) TestStartSession_Success() {
	s.mockService.EXPECT().
		StartSession(gomock.Any(), "Transactions").
		Return(nil)
	s.mockService.EXPECT().
		SessionState("Transactions").
		Return(true, 0)

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/session", nil)

	err := s.handler.StartSession(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.SessionStateResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Transactions", resp.Sheet)
	s.True(resp.SessionOpen)
	s.Equal(0, resp.PendingEdits)
}

func (s *MerchantHandlerSuite) TestStartSession_AlreadyActive() {
	s.mockService.EXPECT().
		StartSession(gomock.Any(), "Transactions").
		Return(services.ErrSessionActive)

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/session", nil)

	err := s.handler.StartSession(c)
	s.NoError(err) // Handler returns nil, error is written to response
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "SESSION_001")
}

func (s *MerchantHandlerSuite) TestStartSession_BackendUnreachable() {
	s.mockService.EXPECT().
		StartSession(gomock.Any(), "Transactions").
		Return(fmt.Errorf("read Transactions: %w", sheets.ErrUnavailable))

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/session", nil)

	err := s.handler.StartSession(c)
	s.NoError(err) // Handler returns nil, error is written to response
	s.Equal(http.StatusBadGateway, rec.Code)
	s.Contains(rec.Body.String(), "SHEET_001")
}

// Test GetSessionState functionality
func (s *MerchantHandlerSuite) TestGetSessionState_OpenSession() {
	s.mockService.EXPECT().
		SessionState("Transactions").
		Return(true, 12)

	c, rec := s.createContext(http.MethodGet, "/api/v1/merchants/session", nil)

	err := s.handler.GetSessionState(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SessionStateResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.SessionOpen)
	s.Equal(12, resp.PendingEdits)
}

func (s *MerchantHandlerSuite) TestGetSessionState_NoSession() {
	s.mockService.EXPECT().
		SessionState("Transactions").
		Return(false, 0)

	c, rec := s.createContext(http.MethodGet, "/api/v1/merchants/session", nil)

	err := s.handler.GetSessionState(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SessionStateResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.SessionOpen)
}

// Test ApplyGroup functionality
func (s *MerchantHandlerSuite) TestApplyGroup_Success() {
	s.mockService.EXPECT().
		ApplyGroup(gomock.Any(), "Transactions", "UBER *EATS TORONTO", "Uber Eats").
		Return(3, nil)
	s.mockService.EXPECT().
		SessionState("Transactions").
		Return(true, 3)

	reqBody := dto.ApplyGroupRequest{
		RawMerchant: "UBER *EATS TORONTO",
		NewGroup:    "Uber Eats",
	}

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/apply", reqBody)

	err := s.handler.ApplyGroup(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ApplyGroupResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(3, resp.RowsUpdated)
	s.Equal(3, resp.PendingEdits)
	s.Contains(resp.Message, "applied")
}

func (s *MerchantHandlerSuite) TestApplyGroup_MissingFields() {
	reqBody := dto.ApplyGroupRequest{
		RawMerchant: "UBER *EATS TORONTO",
		// NewGroup missing
	}

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/apply", reqBody)

	err := s.handler.ApplyGroup(c)
	s.NoError(err) // Handler returns nil, error is written to response
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *MerchantHandlerSuite) TestApplyGroup_NoSession() {
	s.mockService.EXPECT().
		ApplyGroup(gomock.Any(), "Transactions", "STARBUCKS #1234", "Starbucks").
		Return(0, services.ErrNoSession)

	reqBody := dto.ApplyGroupRequest{
		RawMerchant: "STARBUCKS #1234",
		NewGroup:    "Starbucks",
	}

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/apply", reqBody)

	err := s.handler.ApplyGroup(c)
	s.NoError(err) // Handler returns nil, error is written to response
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "SESSION_002")
}

func (s *MerchantHandlerSuite) TestApplyGroup_NoMatchingRows() {
	s.mockService.EXPECT().
		ApplyGroup(gomock.Any(), "Transactions", "NO SUCH MERCHANT", "Anything").
		Return(0, services.ErrMerchantNoRows)

	reqBody := dto.ApplyGroupRequest{
		RawMerchant: "NO SUCH MERCHANT",
		NewGroup:    "Anything",
	}

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/apply", reqBody)

	err := s.handler.ApplyGroup(c)
	s.NoError(err) // Handler returns nil, error is written to response
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "MERCHANT_003")
}

// Test FlushSession functionality
func (s *MerchantHandlerSuite) TestFlushSession_Completed() {
	s.mockService.EXPECT().
		FlushSession(gomock.Any(), "Transactions").
		Return(&services.FlushResult{CellsWritten: 8, CellsFailed: 0, Degraded: false}, nil)
	s.mockService.EXPECT().
		SessionState("Transactions").
		Return(false, 0)
	s.mockMetrics.EXPECT().
		IncrementCounter("session_flushes_total", map[string]string{"status": "completed"})
	s.mockMetrics.EXPECT().
		RecordProcessingTime("session_flush_duration", gomock.Any())

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/flush", nil)

	err := s.handler.FlushSession(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.FlushSessionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(8, resp.CellsWritten)
	s.Equal(0, resp.CellsFailed)
	s.False(resp.Degraded)
	s.False(resp.SessionOpen)
}

func (s *MerchantHandlerSuite) TestFlushSession_DegradedKeepsSessionOpen() {
	s.mockService.EXPECT().
		FlushSession(gomock.Any(), "Transactions").
		Return(&services.FlushResult{CellsWritten: 5, CellsFailed: 3, Degraded: true}, nil)
	s.mockService.EXPECT().
		SessionState("Transactions").
		Return(true, 3)
	s.mockMetrics.EXPECT().
		IncrementCounter("session_flushes_total", map[string]string{"status": "degraded"})
	s.mockMetrics.EXPECT().
		RecordProcessingTime("session_flush_duration", gomock.Any())

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/flush", nil)

	err := s.handler.FlushSession(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.FlushSessionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(5, resp.CellsWritten)
	s.Equal(3, resp.CellsFailed)
	s.True(resp.Degraded)
	s.True(resp.SessionOpen, "Failed cells must keep the session open for a retry")
	s.Contains(resp.Message, "flush again")
}

func (s *MerchantHandlerSuite) TestFlushSession_NoSession() {
	s.mockService.EXPECT().
		FlushSession(gomock.Any(), "Transactions").
		Return(nil, services.ErrNoSession)
	s.mockMetrics.EXPECT().
		IncrementCounter("session_flushes_total", map[string]string{"status": "failed"})

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/flush", nil)

	err := s.handler.FlushSession(c)
	s.NoError(err) // Handler returns nil, error is written to response
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "SESSION_002")
}

func (s *MerchantHandlerSuite) TestFlushSession_AlreadyInFlight() {
	s.mockService.EXPECT().
		FlushSession(gomock.Any(), "Transactions").
		Return(nil, services.ErrFlushInProgress)
	s.mockMetrics.EXPECT().
		IncrementCounter("session_flushes_total", map[string]string{"status": "failed"})

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/flush", nil)

	err := s.handler.FlushSession(c)
	s.NoError(err) // Handler returns nil, error is written to response
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "SESSION_003")
}

func (s *MerchantHandlerSuite) TestFlushSession_NothingPending() {
	s.mockService.EXPECT().
		FlushSession(gomock.Any(), "Transactions").
		Return(nil, services.ErrNothingPending)
	s.mockMetrics.EXPECT().
		IncrementCounter("session_flushes_total", map[string]string{"status": "failed"})

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/flush", nil)

	err := s.handler.FlushSession(c)
	s.NoError(err) // Handler returns nil, error is written to response
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "SESSION_004")
}

// Test RevertSession functionality
func (s *MerchantHandlerSuite) TestRevertSession_Success() {
	s.mockService.EXPECT().
		RevertSession(gomock.Any(), "Transactions").
		Return(nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/revert", nil)

	err := s.handler.RevertSession(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SessionStateResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.SessionOpen)
	s.Equal(0, resp.PendingEdits)
}

func (s *MerchantHandlerSuite) TestRevertSession_NoSession() {
	s.mockService.EXPECT().
		RevertSession(gomock.Any(), "Transactions").
		Return(services.ErrNoSession)

	c, rec := s.createContext(http.MethodPost, "/api/v1/merchants/revert", nil)

	err := s.handler.RevertSession(c)
	s.NoError(err) // Handler returns nil, error is written to response
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "SESSION_002")
}
