package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/database/mongoclient"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/base/metrics"
	"github.com/andy-marketplace/goapi/domain"
)

const (
	queryMaxTime  = 20 * time.Second
	slowThreshold = 500 * time.Millisecond
	// concurrent transactions
	maxTransactions = 10
)

var timeNow = time.Now

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
	met        metrics.Service
	txSlots    chan struct{}
}

// New initializes an impl
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	return newImpl(client, checkIndex)
}

func newImpl(client *mongoclient.Client, checkIndex bool) *impl {
	return &impl{
		client:     client,
		checkIndex: checkIndex,
		met:        metrics.New("mongo"),
		txSlots:    make(chan struct{}, maxTransactions),
	}
}

func (im *impl) collection(table domain.Table) *mongo.Collection {
	return im.client.Database(im.client.DbName).Collection(string(table))
}

// track times an operation and logs it when slow; call the result when the operation ends
func (im *impl) track(c ctx.Ctx, table domain.Table, action string, query interface{}) func() {
	start := timeNow()
	timer := im.met.BumpTime("time", "table", string(table), "action", action)
	return func() {
		timer.End()
		if elapsed := time.Since(start); elapsed >= slowThreshold {
			im.met.BumpSum("slowlog", 1, "table", string(table), "action", action)
			c.WithFields(log.Fields{
				"table":      table,
				"action":     action,
				"durationMs": elapsed.Milliseconds(),
				"query":      query,
			}).Warn("mongo slowlog")
		}
	}
}

func (im *impl) logerr(c ctx.Ctx, msg string, err error) {
	im.met.BumpSum("err", 1)
	c.WithField("err", err).Error(msg)
}

func (im *impl) Insert(c ctx.Ctx, table domain.Table, doc interface{}) error {
	defer im.track(c, table, "insert", nil)()
	c = ctx.WithLogField(c, "table", table)

	if _, err := im.collection(table).InsertOne(c, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(c, "InsertOne failed", err)
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, table domain.Table, query, result interface{}) error {
	defer im.track(c, table, "findone", query)()
	c = ctx.WithValues(c, log.Fields{"table": table, "query": query})

	if err := im.checkQueryIndex(c, table, "find", bson.E{Key: "filter", Value: query}); err != nil {
		return err
	}

	opts := options.FindOne().SetMaxTime(queryMaxTime)
	if err := im.collection(table).FindOne(c, query, opts).Decode(result); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		im.logerr(c, "FindOne failed", err)
		return err
	}
	return nil
}

func (im *impl) Count(c ctx.Ctx, table domain.Table, selector interface{}) (int, error) {
	defer im.track(c, table, "count", selector)()
	c = ctx.WithValues(c, log.Fields{"table": table, "selector": selector})

	if err := im.checkQueryIndex(c, table, "count", bson.E{Key: "query", Value: selector}); err != nil {
		return 0, err
	}

	opts := options.Count().SetMaxTime(queryMaxTime)
	n, err := im.collection(table).CountDocuments(c, selector, opts)
	if err != nil {
		im.logerr(c, "CountDocuments failed", err)
		return 0, err
	}
	return int(n), nil
}

func (im *impl) Upsert(c ctx.Ctx, table domain.Table, selector, doc interface{}) error {
	defer im.track(c, table, "upsert", selector)()
	c = ctx.WithValues(c, log.Fields{"table": table, "selector": selector})

	opts := options.Replace().SetUpsert(true)
	if _, err := im.collection(table).ReplaceOne(c, selector, doc, opts); err != nil {
		im.logerr(c, "ReplaceOne failed", err)
		return err
	}
	return nil
}

// sortOption turns "field" / "-field" into a sort document, skipping empty fields
func sortOption(fields ...string) bson.D {
	res := bson.D{}
	for _, f := range fields {
		switch {
		case f == "":
		case f[0] == '-':
			res = append(res, bson.E{Key: f[1:], Value: -1})
		default:
			res = append(res, bson.E{Key: f, Value: 1})
		}
	}
	return res
}

func (im *impl) Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error {
	return im.SearchNSorts(c, table, offset, limit, []string{sort}, query, results)
}

func (im *impl) SearchNSorts(c ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error {
	defer im.track(c, table, "search", query)()
	c = ctx.WithValues(c, log.Fields{"table": table, "query": query})

	if err := im.checkQueryIndex(c, table, "find", bson.E{Key: "filter", Value: query}); err != nil {
		return err
	}

	opts := options.Find().SetMaxTime(queryMaxTime).SetLimit(int64(limit)).SetSkip(int64(offset))
	if sort := sortOption(sortFields...); len(sort) > 0 {
		opts.SetSort(sort)
	}
	cursor, err := im.collection(table).Find(c, query, opts)
	if err != nil {
		im.logerr(c, "Find failed", err)
		return err
	}
	defer cursor.Close(c)

	if err := cursor.All(c, results); err != nil {
		im.logerr(c, "cursor.All failed", err)
		return err
	}
	return nil
}

func (im *impl) Patch(c ctx.Ctx, table domain.Table, selector, update interface{}) error {
	defer im.track(c, table, "patch", selector)()
	c = ctx.WithValues(c, log.Fields{"table": table, "selector": selector})

	res, err := im.collection(table).UpdateOne(c, selector, bson.M{"$set": update})
	if err != nil {
		im.logerr(c, "UpdateOne failed", err)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) CustomPatch(c ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error {
	defer im.track(c, table, "custompatch", selector)()
	c = ctx.WithValues(c, log.Fields{"table": table, "selector": selector})

	opts := options.Update().SetUpsert(upsert)
	res, err := im.collection(table).UpdateOne(c, selector, update, opts)
	if err != nil {
		// concurrent upserts on the same selector
		if upsert && mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(c, "UpdateOne failed", err)
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RunWithTransaction runs run inside a session transaction; the ctx handed to run carries the session
func (im *impl) RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error {
	select {
	case <-c.Done():
		return c.Err()
	case im.txSlots <- struct{}{}:
	}
	defer func() { <-im.txSlots }()

	// explain is not supported inside a transaction
	if im.checkIndex {
		return run(c)
	}

	session, err := im.client.StartSession()
	if err != nil {
		im.logerr(c, "StartSession failed", err)
		return err
	}
	defer session.EndSession(c)

	_, err = session.WithTransaction(c, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, run(ctx.Ctx{Context: sessCtx, Logger: c.Logger})
	})
	return err
}

// checkQueryIndex explains the query and rejects collection scans.
// See https://docs.mongodb.com/manual/reference/command/explain/
func (im *impl) checkQueryIndex(c ctx.Ctx, table domain.Table, action string, query bson.E) error {
	if !im.checkIndex {
		return nil
	}
	res := im.client.Database(im.client.DbName).RunCommand(c, bson.D{
		{Key: "explain", Value: bson.D{{Key: action, Value: string(table)}, query}},
		{Key: "verbosity", Value: "queryPlanner"},
	})

	var m bson.M
	if err := res.Decode(&m); err != nil {
		c.WithField("err", err).Warn("checkQueryIndex decode failed")
		return nil
	}
	// the explain layout differs between server versions, so look for the stage name anywhere
	if strings.Contains(fmt.Sprintf("%v", m), "COLLSCAN") {
		c.Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
