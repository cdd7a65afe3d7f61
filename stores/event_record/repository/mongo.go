package repository

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
	"github.com/andy-marketplace/goapi/service/query"
)

const (
	// DefaultFirst and MaxFirst follow the graphql pagination limits
	DefaultFirst = 100
	MaxFirst     = 1000
)

// participantFields are matched by WithAccount
var participantFields = []string{"seller", "buyer", "bidder", "winner", "creator", "from", "to", "owner"}

type search struct {
	query  bson.M
	sorts  []string
	offset int
	limit  int
}

func makeSearch(optFns ...record.FindOptions) (*search, error) {
	opts, err := record.GetFindOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.ChainId != nil {
		query["chainId"] = *opts.ChainId
	}
	if opts.Contract != nil {
		query["contract"] = *opts.Contract
	}
	if opts.NftAddress != nil {
		query["nftAddress"] = *opts.NftAddress
	}
	if opts.TokenId != nil {
		query["tokenId"] = *opts.TokenId
	}
	if opts.Category != nil {
		query["category"] = *opts.Category
	}
	if opts.Seller != nil {
		query["seller"] = *opts.Seller
	}
	if opts.Bidder != nil {
		query["bidder"] = *opts.Bidder
	}
	if opts.To != nil {
		query["to"] = *opts.To
	}
	if opts.FromBlock != nil {
		query["blockNumber"] = bson.M{"$gte": *opts.FromBlock}
	}

	and := bson.A{}
	if opts.Account != nil {
		or := bson.A{}
		for _, f := range participantFields {
			or = append(or, bson.M{f: *opts.Account})
		}
		and = append(and, bson.M{"$or": or})
	}
	if opts.After != nil {
		and = append(and, bson.M{"$or": bson.A{
			bson.M{"blockNumber": bson.M{"$gt": opts.After.BlockNumber}},
			bson.M{"blockNumber": opts.After.BlockNumber, "logIndex": bson.M{"$gt": opts.After.LogIndex}},
		}})
	}
	if len(and) > 0 {
		query["$and"] = and
	}

	res := &search{
		query: query,
		limit: DefaultFirst,
	}

	// newest first unless asked otherwise, ties broken by chain position
	dir := "-"
	if opts.SortDir != nil && *opts.SortDir == domain.SortDirAsc {
		dir = ""
	}
	res.sorts = []string{dir + "blockNumber", dir + "logIndex"}
	if opts.SortBy != nil && *opts.SortBy != "blockNumber" {
		res.sorts = append([]string{dir + *opts.SortBy}, res.sorts...)
	}

	if opts.Skip != nil {
		res.offset = int(*opts.Skip)
	}
	if opts.First != nil {
		res.limit = int(*opts.First)
	}
	if res.limit > MaxFirst {
		res.limit = MaxFirst
	}
	return res, nil
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) record.Repo {
	return &impl{q: q}
}

// Store upserts with $setOnInsert so an existing id is left untouched and the
// surrounding transaction is not aborted by a duplicate key.
func (im *impl) Store(c ctx.Ctx, r record.Record) error {
	raw, err := bson.Marshal(r)
	if err != nil {
		c.WithField("err", err).Error("bson.Marshal failed")
		return err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		c.WithField("err", err).Error("bson.Unmarshal failed")
		return err
	}
	delete(doc, "_id")

	id := r.GetMeta().Id
	if err := im.q.CustomPatch(c, r.Table(), bson.M{"_id": id}, bson.M{"$setOnInsert": doc}, true); err == query.ErrDuplicateKey {
		return nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"table": r.Table(),
			"id":    id,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, table domain.Table, out interface{}, optFns ...record.FindOptions) error {
	srch, err := makeSearch(optFns...)
	if err != nil {
		return err
	}
	if srch.limit == 0 {
		return nil
	}
	if err := im.q.SearchNSorts(c, table, srch.offset, srch.limit, srch.sorts, srch.query, out); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"table": table,
		}).Error("q.SearchNSorts failed")
		return err
	}
	return nil
}

// FindOne decodes the first match in sort order, newest by default, into out which
// must be a pointer to a record struct
func (im *impl) FindOne(c ctx.Ctx, table domain.Table, out interface{}, optFns ...record.FindOptions) error {
	srch, err := makeSearch(optFns...)
	if err != nil {
		return err
	}
	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Ptr || outVal.IsNil() {
		return domain.ErrBadParamInput
	}
	results := reflect.New(reflect.SliceOf(outVal.Elem().Type()))
	if err := im.q.SearchNSorts(c, table, srch.offset, 1, srch.sorts, srch.query, results.Interface()); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"table": table,
		}).Error("q.SearchNSorts failed")
		return err
	}
	if results.Elem().Len() == 0 {
		return domain.ErrNotFound
	}
	outVal.Elem().Set(results.Elem().Index(0))
	return nil
}

func (im *impl) Count(c ctx.Ctx, table domain.Table, optFns ...record.FindOptions) (int, error) {
	srch, err := makeSearch(optFns...)
	if err != nil {
		return 0, err
	}
	n, err := im.q.Count(c, table, srch.query)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"table": table,
		}).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}
