package mongo

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/service/query"
)

type repo struct {
	q query.Mongo
}

func NewTrackerStateMongoRepo(q query.Mongo) domain.TrackerStateRepo {
	return &repo{q: q}
}

// selector spells out every key since MakeBsonM drops the empty tag
func selector(id *domain.TrackerStateId) bson.M {
	return bson.M{
		"chainId":         id.ChainId,
		"contractAddress": id.ContractAddress.ToLower(),
		"tag":             id.Tag,
	}
}

// domainErr translates storage errors, anything else is logged
func domainErr(c ctx.Ctx, op string, id *domain.TrackerStateId, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, query.ErrNotFound):
		return domain.ErrNotFound
	case errors.Is(err, query.ErrDuplicateKey):
		return domain.ErrConflict
	}
	c.WithFields(log.Fields{"err": err, "id": id}).Error(op + " failed")
	return err
}

func (r *repo) Get(c ctx.Ctx, id *domain.TrackerStateId) (*domain.TrackerState, error) {
	var state domain.TrackerState
	if err := r.q.FindOne(c, domain.TableTrackerStates, selector(id), &state); err != nil {
		return nil, domainErr(c, "q.FindOne", id, err)
	}
	return &state, nil
}

func (r *repo) FindAll(c ctx.Ctx, chainId domain.ChainId) ([]*domain.TrackerState, error) {
	states := []*domain.TrackerState{}
	if err := r.q.Search(c, domain.TableTrackerStates, 0, 0, "contractAddress", bson.M{"chainId": chainId}, &states); err != nil {
		c.WithFields(log.Fields{"err": err, "chainId": chainId}).Error("q.Search failed")
		return nil, err
	}
	return states, nil
}

func (r *repo) Update(c ctx.Ctx, state *domain.TrackerState) error {
	id := state.ToId()
	return domainErr(c, "q.Patch", id, r.q.Patch(c, domain.TableTrackerStates, selector(id), state))
}

func (r *repo) Store(c ctx.Ctx, state *domain.TrackerState) error {
	return domainErr(c, "q.Insert", state.ToId(), r.q.Insert(c, domain.TableTrackerStates, state))
}
