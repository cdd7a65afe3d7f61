package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/database/mongoclient"
	"github.com/andy-marketplace/goapi/domain"
)

const (
	testTable = domain.Table("query_test")
	dbName    = "testdb"
	mongoURI  = "mongodb://localhost:27017/?retryWrites=true&w=majority"
)

type dummy struct {
	Key   string `bson:"key"`
	Value int    `bson:"value"`
}

func TestSortOption(t *testing.T) {
	req := require.New(t)
	req.Equal(bson.D{
		{Key: "blockNumber", Value: -1},
		{Key: "logIndex", Value: 1},
	}, sortOption("-blockNumber", "", "logIndex"))
	req.Empty(sortOption(""))
}

type querySuite struct {
	suite.Suite
	c  ctx.Ctx
	im *impl
}

func TestQuerySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("needs a local mongo")
	}
	suite.Run(t, new(querySuite))
}

func (s *querySuite) SetupTest() {
	s.c = ctx.Background()
	s.im = newImpl(mongoclient.MustConnectMongoClient(mongoclient.Config{URI: mongoURI, AuthDBName: "admin", DBName: dbName, PoolMultiplier: 1}), false)
	s.Require().NoError(s.im.collection(testTable).Drop(s.c))
}

func (s *querySuite) insert(docs ...dummy) {
	for _, d := range docs {
		s.Require().NoError(s.im.Insert(s.c, testTable, d))
	}
}

func (s *querySuite) TestInsertDuplicateKey() {
	s.Require().NoError(s.im.Insert(s.c, testTable, bson.M{"_id": "a", "value": 1}))
	s.ErrorIs(s.im.Insert(s.c, testTable, bson.M{"_id": "a", "value": 2}), ErrDuplicateKey)
}

func (s *querySuite) TestFindOne() {
	s.insert(dummy{"a", 1})

	res := dummy{}
	s.Require().NoError(s.im.FindOne(s.c, testTable, bson.M{"key": "a"}, &res))
	s.Equal(dummy{"a", 1}, res)

	s.ErrorIs(s.im.FindOne(s.c, testTable, bson.M{"key": "b"}, &res), ErrNotFound)
}

func (s *querySuite) TestCountAndSearch() {
	s.insert(dummy{"a", 2}, dummy{"b", 1}, dummy{"c", 3})

	n, err := s.im.Count(s.c, testTable, bson.M{"value": bson.M{"$gte": 2}})
	s.Require().NoError(err)
	s.Equal(2, n)

	res := []dummy{}
	s.Require().NoError(s.im.Search(s.c, testTable, 0, 0, "-value", bson.M{}, &res))
	s.Equal([]dummy{{"c", 3}, {"a", 2}, {"b", 1}}, res)

	res = []dummy{}
	s.Require().NoError(s.im.SearchNSorts(s.c, testTable, 1, 1, []string{"value", "key"}, bson.M{}, &res))
	s.Equal([]dummy{{"a", 2}}, res)
}

func (s *querySuite) TestUpsert() {
	s.Require().NoError(s.im.Upsert(s.c, testTable, bson.M{"key": "a"}, dummy{"a", 1}))
	s.Require().NoError(s.im.Upsert(s.c, testTable, bson.M{"key": "a"}, dummy{"a", 5}))

	res := []dummy{}
	s.Require().NoError(s.im.Search(s.c, testTable, 0, 0, "", bson.M{}, &res))
	s.Equal([]dummy{{"a", 5}}, res)
}

func (s *querySuite) TestPatch() {
	s.insert(dummy{"a", 1})

	s.Require().NoError(s.im.Patch(s.c, testTable, bson.M{"key": "a"}, bson.M{"value": 7}))
	// an update that changes nothing still matches
	s.Require().NoError(s.im.Patch(s.c, testTable, bson.M{"key": "a"}, bson.M{"value": 7}))
	s.ErrorIs(s.im.Patch(s.c, testTable, bson.M{"key": "b"}, bson.M{"value": 7}), ErrNotFound)

	res := dummy{}
	s.Require().NoError(s.im.FindOne(s.c, testTable, bson.M{"key": "a"}, &res))
	s.Equal(7, res.Value)
}

func (s *querySuite) TestCustomPatchSetOnInsert() {
	selector := bson.M{"_id": "r1"}
	s.Require().NoError(s.im.CustomPatch(s.c, testTable, selector, bson.M{"$setOnInsert": bson.M{"value": 1}}, true))
	s.Require().NoError(s.im.CustomPatch(s.c, testTable, selector, bson.M{"$setOnInsert": bson.M{"value": 2}}, true))

	res := dummy{}
	s.Require().NoError(s.im.FindOne(s.c, testTable, selector, &res))
	s.Equal(1, res.Value)

	s.ErrorIs(s.im.CustomPatch(s.c, testTable, bson.M{"_id": "r2"}, bson.M{"$set": bson.M{"value": 1}}, false), ErrNotFound)
}

func (s *querySuite) TestRunWithTransactionAborts() {
	errAbort := errors.New("abort")
	err := s.im.RunWithTransaction(s.c, func(c ctx.Ctx) error {
		if err := s.im.Insert(c, testTable, dummy{"a", 1}); err != nil {
			return err
		}
		return errAbort
	})
	s.ErrorIs(err, errAbort)

	n, err := s.im.Count(s.c, testTable, bson.M{})
	s.Require().NoError(err)
	s.Equal(0, n)
}
