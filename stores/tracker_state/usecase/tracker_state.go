package usecase

import (
	"time"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
)

type trackerStateUseCase struct {
	repo    domain.TrackerStateRepo
	timeout time.Duration
}

// NewTrackerStateUseCase bounds every repo call by timeout
func NewTrackerStateUseCase(r domain.TrackerStateRepo, timeout time.Duration) domain.TrackerStateUseCase {
	return &trackerStateUseCase{repo: r, timeout: timeout}
}

func (u *trackerStateUseCase) Get(c ctx.Ctx, id *domain.TrackerStateId) (*domain.TrackerState, error) {
	c, cancel := ctx.WithTimeout(c, u.timeout)
	defer cancel()
	return u.repo.Get(c, id)
}

func (u *trackerStateUseCase) FindAll(c ctx.Ctx, chainId domain.ChainId) ([]*domain.TrackerState, error) {
	c, cancel := ctx.WithTimeout(c, u.timeout)
	defer cancel()
	return u.repo.FindAll(c, chainId)
}

func (u *trackerStateUseCase) Update(c ctx.Ctx, state *domain.TrackerState) error {
	c, cancel := ctx.WithTimeout(c, u.timeout)
	defer cancel()
	return u.repo.Update(c, state)
}

func (u *trackerStateUseCase) Store(c ctx.Ctx, state *domain.TrackerState) error {
	c, cancel := ctx.WithTimeout(c, u.timeout)
	defer cancel()
	return u.repo.Store(c, state)
}

// Rewind never moves a checkpoint forward. Rescanned logs upsert onto the
// records they produced before, keyed by txHash and logIndex.
func (u *trackerStateUseCase) Rewind(c ctx.Ctx, id *domain.TrackerStateId, blk uint64) error {
	c, cancel := ctx.WithTimeout(c, u.timeout)
	defer cancel()

	state, err := u.repo.Get(c, id)
	if err != nil {
		return err
	}
	next := blk + 1
	if next >= state.LastBlockProcessed {
		return domain.ErrBadParamInput
	}
	c.WithFields(log.Fields{"id": id, "from": state.LastBlockProcessed, "to": next}).Info("rewinding checkpoint")
	state.LastBlockProcessed, state.LastLogIndexProcessed = next, -1
	return u.repo.Update(c, state)
}
