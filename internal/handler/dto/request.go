package dto

// Wire field names follow the original API contract (camelCase).

type DateOptionRequest struct {
	Datetime  string `json:"datetime" binding:"required"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Formatted string `json:"formatted"`
}

type CreateEventRequest struct {
	ID          string              `json:"id" binding:"required"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Password    string              `json:"password"`
	DateOptions []DateOptionRequest `json:"dateOptions"`
}

// UpdateEventRequest is a partial update: absent fields stay untouched,
// which is why everything is a pointer.
type UpdateEventRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Password    *string              `json:"password"`
	DateOptions *[]DateOptionRequest `json:"dateOptions"`
}

type AddParticipantRequest struct {
	Name string `json:"name" binding:"required"`
	// Availabilities maps date option ids (as decimal strings) to status
	// strings; both are validated before anything reaches the service.
	Availabilities map[string]string `json:"availabilities"`
	Comment        string            `json:"comment"`
}

type ValidatePasswordRequest struct {
	Password string `json:"password"`
}

type ConfirmRequest struct {
	DateOptionID int64 `json:"dateOptionId" binding:"required"`
}
