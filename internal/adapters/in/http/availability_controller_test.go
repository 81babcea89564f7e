package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/suchimauz/common-availability-slots-generator/internal/adapters/out/logger"
	"github.com/suchimauz/common-availability-slots-generator/internal/config"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
)

type fakeUseCase struct {
	result *domain.DaySlots
	err    error
}

func (f *fakeUseCase) FindCommonSlots(ctx context.Context, query domain.AvailabilityQuery) (*domain.DaySlots, error) {
	return f.result, f.err
}

func (f *fakeUseCase) RegisterBusyEvent(ctx context.Context, event domain.BusyEvent) error {
	return nil
}

func (f *fakeUseCase) CancelBusyEvent(ctx context.Context, bookingID uuid.UUID) error {
	return nil
}

func newTestRouter(useCase *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.BasicClients = []config.ConfigBasicClient{
		{Username: "slots_finder", Password: "slots_finder"},
	}

	router := gin.New()
	controller := NewAvailabilityController(useCase, cfg, logger.NewNopLogger())
	controller.RegisterRoutes(router)
	return router
}

func postSlots(router *gin.Engine, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/available-slots", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.SetBasicAuth("slots_finder", "slots_finder")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

const validBody = `{"user_ids":[1,2],"start_date":"01-10-2026","end_date":"02-10-2026","timezone":"UTC"}`

func TestFindAvailableSlots_Success(t *testing.T) {
	result := domain.NewDaySlots()
	result.Add("01-10-2026", []string{"9:00am-9:30am", "9:30am-10:00am"})

	router := newTestRouter(&fakeUseCase{result: result})
	recorder := postSlots(router, validBody, true)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"slots":{"01-10-2026":["9:00am-9:30am","9:30am-10:00am"]}}`, recorder.Body.String())
}

func TestFindAvailableSlots_Unauthorized(t *testing.T) {
	router := newTestRouter(&fakeUseCase{result: domain.NewDaySlots()})

	t.Run("No Credentials", func(t *testing.T) {
		recorder := postSlots(router, validBody, false)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "Basic realm=Authorization Required", recorder.Header().Get("WWW-Authenticate"))
	})

	t.Run("Wrong Credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/available-slots", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth("slots_finder", "wrong_password")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestFindAvailableSlots_InvalidBody(t *testing.T) {
	router := newTestRouter(&fakeUseCase{result: domain.NewDaySlots()})
	recorder := postSlots(router, `{"user_ids": not-json`, true)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"detail":"Invalid request body"}`, recorder.Body.String())
}

func TestFindAvailableSlots_ErrorMapping(t *testing.T) {
	cases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "Validation Error",
			err:            &domain.ValidationError{Message: "Date range cannot exceed 31 days"},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Date range cannot exceed 31 days",
		},
		{
			name:           "All Users Missing",
			err:            &domain.NotFoundError{Message: "No users found"},
			expectedStatus: http.StatusNotFound,
			expectedDetail: "No users found",
		},
		{
			name:           "Some Users Missing",
			err:            &domain.NotFoundError{Message: "Users not found: [99]", MissingIDs: []int64{99}, Partial: true},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Users not found: [99]",
		},
		{
			name:           "Timezone Error",
			err:            &domain.TimezoneError{Timezone: "Mars/Olympus", UserID: 3},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Invalid timezone for user 3: Mars/Olympus",
		},
		{
			name:           "Data Access Error",
			err:            &domain.DataAccessError{Op: "fetching users", Err: errors.New("connection refused")},
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Database error while fetching users: connection refused",
		},
		{
			name:           "Unexpected Error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "An unexpected error occurred",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			router := newTestRouter(&fakeUseCase{err: c.err})
			recorder := postSlots(router, validBody, true)

			assert.Equal(t, c.expectedStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), c.expectedDetail)
		})
	}
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter(&fakeUseCase{result: domain.NewDaySlots()})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Common availability slots generator"}`, recorder.Body.String())
}
