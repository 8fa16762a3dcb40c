package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/MuNeNICK/ScheduleN/internal/auth"
	"github.com/MuNeNICK/ScheduleN/internal/domain"
	"github.com/MuNeNICK/ScheduleN/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetAll(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) error
	Delete(ctx context.Context, id string) error
	ValidatePassword(ctx context.Context, id, password string) (bool, error)
}

type ParticipantSvc interface {
	Add(ctx context.Context, eventID string, input domain.AddParticipantInput) (*domain.Participant, error)
}

type ConfirmationSvc interface {
	Toggle(ctx context.Context, eventID string, dateOptionID int64) (bool, error)
}

type ExportSvc interface {
	ICal(ctx context.Context, eventID string) (*domain.ICalExport, error)
	CalendarLinks(ctx context.Context, eventID string) ([]domain.CalendarLink, error)
}

type Handler struct {
	eventService        EventSvc
	participantService  ParticipantSvc
	confirmationService ConfirmationSvc
	exportService       ExportSvc
	sessions            *auth.Sessions
}

func NewHandler(
	eventService EventSvc,
	participantService ParticipantSvc,
	confirmationService ConfirmationSvc,
	exportService ExportSvc,
	sessions *auth.Sessions,
) *Handler {
	return &Handler{
		eventService:        eventService,
		participantService:  participantService,
		confirmationService: confirmationService,
		exportService:       exportService,
		sessions:            sessions,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateEventInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Password:    req.Password,
		DateOptions: toDateOptionInputs(req.DateOptions),
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateEventResponse{ID: event.ID})
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Unauthenticated callers learn only that the event exists and is
	// protected; answers and date options stay hidden.
	if event.PasswordProtected() && !h.authorized(c, event) {
		c.JSON(http.StatusOK, dto.ToLimitedEventResponse(event))
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Password:    req.Password,
	}
	if req.DateOptions != nil {
		input.DateOptions = toDateOptionInputs(*req.DateOptions)
		if input.DateOptions == nil {
			input.DateOptions = []domain.DateOptionInput{}
		}
	}

	if err := h.eventService.Update(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Participants

func (h *Handler) AddParticipant(c *ginext.Context) {
	id := c.Param("id")

	var req dto.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	availabilities := make(map[int64]domain.Availability, len(req.Availabilities))
	for key, value := range req.Availabilities {
		if value == "" {
			continue
		}
		dateOptionID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date option id: " + key})
			return
		}
		availability, err := domain.ParseAvailability(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		availabilities[dateOptionID] = availability
	}

	input := domain.AddParticipantInput{
		Name:           req.Name,
		Comment:        req.Comment,
		Availabilities: availabilities,
	}

	if _, err := h.participantService.Add(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{Success: true})
}

// Password sessions

func (h *Handler) ValidatePassword(c *ginext.Context) {
	id := c.Param("id")

	var req dto.ValidatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	valid, err := h.eventService.ValidatePassword(c.Request.Context(), id, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !valid {
		c.JSON(http.StatusOK, dto.ValidatePasswordResponse{Valid: false})
		return
	}

	token, err := h.sessions.Issue(id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.SetCookie(auth.CookieName(id), token, h.sessions.TTLSeconds(), "/", "", false, true)

	c.JSON(http.StatusOK, dto.ValidatePasswordResponse{Valid: true})
}

// Confirmation

func (h *Handler) ToggleConfirmation(c *ginext.Context) {
	id := c.Param("id")

	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if event.PasswordProtected() && !h.authorized(c, event) {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthorized.Error()})
		return
	}

	confirmed, err := h.confirmationService.Toggle(c.Request.Context(), id, req.DateOptionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmResponse{Success: true, Confirmed: confirmed})
}

// Export

func (h *Handler) ExportICal(c *ginext.Context) {
	id := c.Param("id")

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if event.PasswordProtected() && !h.authorized(c, event) {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthorized.Error()})
		return
	}

	export, err := h.exportService.ICal(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, "text/calendar;charset=utf-8", []byte(export.Content))
}

func (h *Handler) CalendarLinks(c *ginext.Context) {
	id := c.Param("id")

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if event.PasswordProtected() && !h.authorized(c, event) {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthorized.Error()})
		return
	}

	links, err := h.exportService.CalendarLinks(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCalendarLinkResponses(links))
}

// authorized reports whether the request carries a live session cookie for
// the event.
func (h *Handler) authorized(c *ginext.Context, event *domain.Event) bool {
	cookie, err := c.Cookie(auth.CookieName(event.ID))
	if err != nil {
		return false
	}
	return h.sessions.Verify(cookie, event.ID)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrDateOptionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoConfirmedDates):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func toDateOptionInputs(options []dto.DateOptionRequest) []domain.DateOptionInput {
	if options == nil {
		return nil
	}
	res := make([]domain.DateOptionInput, 0, len(options))
	for _, o := range options {
		res = append(res, domain.DateOptionInput{
			Datetime:  o.Datetime,
			StartTime: o.StartTime,
			EndTime:   o.EndTime,
			Formatted: o.Formatted,
		})
	}
	return res
}
