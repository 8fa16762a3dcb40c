package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MuNeNICK/ScheduleN/internal/auth"
	"github.com/MuNeNICK/ScheduleN/internal/domain"
	"github.com/MuNeNICK/ScheduleN/internal/handler/dto"
	hmocks "github.com/MuNeNICK/ScheduleN/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockParticipantSvc, *hmocks.MockConfirmationSvc, *hmocks.MockExportSvc, *auth.Sessions, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	participantSvc := hmocks.NewMockParticipantSvc(t)
	confirmationSvc := hmocks.NewMockConfirmationSvc(t)
	exportSvc := hmocks.NewMockExportSvc(t)
	sessions := auth.NewSessions("test-secret", time.Hour)

	h := NewHandler(eventSvc, participantSvc, confirmationSvc, exportSvc, sessions)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/events/:id/participants", h.AddParticipant)
		api.POST("/events/:id/validate-password", h.ValidatePassword)
		api.POST("/events/:id/confirm", h.ToggleConfirmation)
		api.GET("/events/:id/ical", h.ExportICal)
		api.GET("/events/:id/calendar-links", h.CalendarLinks)
	}

	return eventSvc, participantSvc, confirmationSvc, exportSvc, sessions, r
}

func openEvent() *domain.Event {
	return &domain.Event{
		ID:          "team-offsite",
		Title:       "Team Offsite",
		Description: "Quarterly planning",
		DateOptions: []domain.DateOption{
			{ID: 1, Datetime: "2026-09-10", StartTime: "14:00"},
			{ID: 2, Datetime: "2026-09-11"},
		},
		Participants: []domain.Participant{
			{
				ID:   1,
				Name: "alice",
				Availabilities: map[int64]domain.Availability{
					1: domain.AvailabilityAvailable,
				},
				SubmittedAt: time.Now(),
			},
		},
		CreatedAt: time.Now(),
	}
}

func protectedEvent() *domain.Event {
	e := openEvent()
	e.PasswordHash = "$2a$10$notarealhashbutnonempty"
	return e
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(openEvent(), nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		ID:    "team-offsite",
		Title: "Team Offsite",
		DateOptions: []dto.DateOptionRequest{
			{Datetime: "2026-09-10", StartTime: "14:00"},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "team-offsite", resp.ID)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, _, _, _, r := setupRouter(t)

	body := []byte(`{"title":"No ID"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_ValidationError(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body := []byte(`{"id":"bad-date","title":"X","dateOptions":[{"datetime":"10.09.2026"}]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetAll(mock.Anything).Return([]*domain.Event{openEvent(), protectedEvent()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.False(t, resp[0].PasswordProtected)
	assert.True(t, resp[1].PasswordProtected)
}

func TestHandler_GetEvent_Open(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "team-offsite").Return(openEvent(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/team-offsite", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "team-offsite", resp.ID)
	assert.Len(t, resp.DateOptions, 2)
	assert.Len(t, resp.Participants, 1)
	assert.NotNil(t, resp.ConfirmedDateOptionIDs)

	// the wire contract is the camelCase DTO, nothing else
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, key := range []string{"passwordProtected", "dateOptions", "participants", "confirmedDateOptionIds", "createdAt"} {
		assert.Contains(t, raw, key)
	}
	for _, key := range []string{"date_options", "confirmed_date_option_ids", "created_at", "passwordHash", "password_hash"} {
		assert.NotContains(t, raw, key)
	}
}

func TestHandler_GetEvent_ProtectedWithoutSession(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "team-offsite").Return(protectedEvent(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/team-offsite", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// limited payload only: no date options, no participants
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, raw, "id")
	assert.Contains(t, raw, "passwordProtected")
	assert.NotContains(t, raw, "dateOptions")
	assert.NotContains(t, raw, "participants")
}

func TestHandler_GetEvent_ProtectedWithSession(t *testing.T) {
	eventSvc, _, _, _, sessions, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "team-offsite").Return(protectedEvent(), nil)

	token, err := sessions.Issue("team-offsite")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/team-offsite", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName("team-offsite"), Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.DateOptions, 2)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/gone", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateEvent_Success(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Update(mock.Anything, "team-offsite", mock.Anything).Return(nil)

	body := []byte(`{"title":"Renamed","dateOptions":[{"datetime":"2026-09-12"}]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/team-offsite", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Delete(mock.Anything, "team-offsite").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/team-offsite", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Participants ---

func TestHandler_AddParticipant_Success(t *testing.T) {
	_, participantSvc, _, _, _, r := setupRouter(t)

	participant := &domain.Participant{ID: 2, Name: "bob"}
	participantSvc.EXPECT().Add(mock.Anything, "team-offsite", mock.Anything).
		Run(func(_ context.Context, _ string, input domain.AddParticipantInput) {
			assert.Equal(t, "bob", input.Name)
			assert.Equal(t, domain.AvailabilityAvailable, input.Availabilities[1])
			assert.Equal(t, domain.AvailabilityUnavailable, input.Availabilities[2])
		}).
		Return(participant, nil)

	body := []byte(`{"name":"bob","availabilities":{"1":"available","2":"unavailable"}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/team-offsite/participants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_AddParticipant_BadOptionID(t *testing.T) {
	_, _, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"bob","availabilities":{"abc":"available"}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/team-offsite/participants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddParticipant_BadStatus(t *testing.T) {
	_, _, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"bob","availabilities":{"1":"definitely"}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/team-offsite/participants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddParticipant_MissingName(t *testing.T) {
	_, _, _, _, _, r := setupRouter(t)

	body := []byte(`{"availabilities":{"1":"available"}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/team-offsite/participants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Password sessions ---

func TestHandler_ValidatePassword_SetsCookie(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().ValidatePassword(mock.Anything, "team-offsite", "hunter2").Return(true, nil)

	body := []byte(`{"password":"hunter2"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/team-offsite/validate-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ValidatePasswordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName("team-offsite"), cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestHandler_ValidatePassword_Invalid(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().ValidatePassword(mock.Anything, "team-offsite", "wrong").Return(false, nil)

	body := []byte(`{"password":"wrong"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/team-offsite/validate-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ValidatePasswordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Empty(t, w.Result().Cookies())
}

// --- Confirmation ---

func TestHandler_ToggleConfirmation_Success(t *testing.T) {
	eventSvc, _, confirmationSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "team-offsite").Return(openEvent(), nil)
	confirmationSvc.EXPECT().Toggle(mock.Anything, "team-offsite", int64(1)).Return(true, nil)

	body := []byte(`{"dateOptionId":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/team-offsite/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ConfirmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Confirmed)
}

func TestHandler_ToggleConfirmation_MissingBody(t *testing.T) {
	_, _, _, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/team-offsite/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ToggleConfirmation_ProtectedUnauthorized(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "team-offsite").Return(protectedEvent(), nil)

	body := []byte(`{"dateOptionId":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/team-offsite/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ToggleConfirmation_ProtectedAuthorized(t *testing.T) {
	eventSvc, _, confirmationSvc, _, sessions, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "team-offsite").Return(protectedEvent(), nil)
	confirmationSvc.EXPECT().Toggle(mock.Anything, "team-offsite", int64(2)).Return(false, nil)

	token, err := sessions.Issue("team-offsite")
	require.NoError(t, err)

	body := []byte(`{"dateOptionId":2}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/team-offsite/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: auth.CookieName("team-offsite"), Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ConfirmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Confirmed)
}

// --- Export ---

func TestHandler_ExportICal_Success(t *testing.T) {
	eventSvc, _, _, exportSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "team-offsite").Return(openEvent(), nil)
	exportSvc.EXPECT().ICal(mock.Anything, "team-offsite").Return(&domain.ICalExport{
		Filename: "Team_Offsite.ics",
		Content:  "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n",
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/team-offsite/ical", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/calendar;charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Team_Offsite.ics"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
}

func TestHandler_ExportICal_NoConfirmedDates(t *testing.T) {
	eventSvc, _, _, exportSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "team-offsite").Return(openEvent(), nil)
	exportSvc.EXPECT().ICal(mock.Anything, "team-offsite").Return(nil, domain.ErrNoConfirmedDates)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/team-offsite/ical", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ExportICal_ProtectedUnauthorized(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "team-offsite").Return(protectedEvent(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/team-offsite/ical", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CalendarLinks_Success(t *testing.T) {
	eventSvc, _, _, exportSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "team-offsite").Return(openEvent(), nil)
	exportSvc.EXPECT().CalendarLinks(mock.Anything, "team-offsite").Return([]domain.CalendarLink{
		{DateOptionID: 1, URL: "https://calendar.google.com/calendar/render?action=TEMPLATE"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/team-offsite/calendar-links", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CalendarLinkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(1), resp[0].DateOptionID)
}

func TestHandler_HandleError_Internal(t *testing.T) {
	eventSvc, _, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetByID(mock.Anything, "team-offsite").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/team-offsite", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
