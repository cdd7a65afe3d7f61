package usecase

import (
	"sort"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
	hcdomain "github.com/andy-marketplace/goapi/domain/healthcheck"
)

type impl struct {
	repo     hcdomain.HealthCheckRepo
	trackers domain.TrackerStateUseCase
	chainId  domain.ChainId
}

func New(repo hcdomain.HealthCheckRepo, trackers domain.TrackerStateUseCase, chainId domain.ChainId) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:     repo,
		trackers: trackers,
		chainId:  chainId,
	}
}

// Check returns the status together with ErrUnhealthy when a backend is down
func (im *impl) Check(c ctx.Ctx) (*hcdomain.Status, error) {
	status := &hcdomain.Status{Healthy: "ok", Storage: map[string]string{}}

	pings := im.repo.Ping(c)
	names := make([]string, 0, len(pings))
	for name := range pings {
		names = append(names, name)
	}
	sort.Strings(names)
	var down []string
	for _, name := range names {
		if err := pings[name]; err != nil {
			status.Storage[name] = err.Error()
			down = append(down, name)
		} else {
			status.Storage[name] = "ok"
		}
	}
	if len(down) > 0 {
		status.Healthy = "degraded"
		c.WithField("down", down).Warn("storage unhealthy")
		return status, hcdomain.ErrUnhealthy
	}

	states, err := im.trackers.FindAll(c, im.chainId)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "chainId": im.chainId}).Error("trackers.FindAll failed")
		return nil, err
	}
	status.Trackers = states
	return status, nil
}
