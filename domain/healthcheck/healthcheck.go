package healthcheck

import (
	"errors"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
)

// ErrUnhealthy is returned with a Status when a storage backend fails its ping
var ErrUnhealthy = errors.New("unhealthy")

// Status reports every storage backend next to the tracker checkpoints
type Status struct {
	Healthy  string                 `json:"healthy"`
	Storage  map[string]string      `json:"storage"`
	Trackers []*domain.TrackerState `json:"trackers"`
}

type HealthCheckUsecase interface {
	Check(c ctx.Ctx) (*Status, error)
}

// HealthCheckRepo pings the storage backends, keyed by backend name
type HealthCheckRepo interface {
	Ping(c ctx.Ctx) map[string]error
}
