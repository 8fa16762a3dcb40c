package ports

import "context"

type ConfirmationRepo interface {
	Toggle(ctx context.Context, eventID string, dateOptionID int64) (bool, error)
}
