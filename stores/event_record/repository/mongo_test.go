package repository

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/database/mongoclient"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/marketplace"
	"github.com/andy-marketplace/goapi/domain/record"
	"github.com/andy-marketplace/goapi/service/query"
)

func TestMakeSearch(t *testing.T) {
	req := require.New(t)

	srch, err := makeSearch()
	req.NoError(err)
	req.Equal(bson.M{}, srch.query)
	req.Equal([]string{"-blockNumber", "-logIndex"}, srch.sorts)
	req.Equal(0, srch.offset)
	req.Equal(DefaultFirst, srch.limit)

	srch, err = makeSearch(
		record.WithNftAddress("0xABC"),
		record.WithTokenId("12"),
		record.WithPagination(20, 5000),
		record.WithSort("price", domain.SortDirAsc),
	)
	req.NoError(err)
	req.Equal(bson.M{"nftAddress": domain.Address("0xabc"), "tokenId": domain.TokenId("12")}, srch.query)
	req.Equal([]string{"price", "blockNumber", "logIndex"}, srch.sorts)
	req.Equal(20, srch.offset)
	req.Equal(MaxFirst, srch.limit)

	_, err = makeSearch(record.WithTokenId("not-a-number"))
	req.Error(err)

	_, err = makeSearch(record.WithPagination(-1, 10))
	req.ErrorIs(err, domain.ErrBadParamInput)
}

func TestMakeSearchAccountAndAfter(t *testing.T) {
	req := require.New(t)
	after := &record.Meta{BlockNumber: 10, LogIndex: 2}

	srch, err := makeSearch(record.WithAccount("0xAA"), record.WithAfter(after), record.WithFromBlock(5))
	req.NoError(err)
	req.Equal(bson.M{"$gte": domain.BlockNumber(5)}, srch.query["blockNumber"])
	and := srch.query["$and"].(bson.A)
	req.Len(and, 2)
	or := and[0].(bson.M)["$or"].(bson.A)
	req.Len(or, len(participantFields))
	req.Contains(or, bson.M{"buyer": domain.Address("0xaa")})
}

type recordRepoSuite struct {
	suite.Suite
	ctx    ctx.Ctx
	client *mongoclient.Client
	query  query.Mongo
	repo   record.Repo
}

func TestRecordRepo(t *testing.T) {
	if testing.Short() {
		t.Skip("requires mongo")
	}
	suite.Run(t, new(recordRepoSuite))
}

func (s *recordRepoSuite) SetupSuite() {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017/?retryWrites=true&w=majority"
	}
	s.client = mongoclient.MustConnectMongoClient(mongoclient.Config{URI: uri, AuthDBName: "admin", DBName: "test", PoolMultiplier: 2})
	s.ctx = ctx.Background()
	s.query = query.New(s.client, false)
	s.repo = New(s.query)
}

func (s *recordRepoSuite) SetupTest() {
	_, err := s.client.Database(s.client.DbName).Collection(domain.TableItemListeds).DeleteMany(s.ctx, bson.M{})
	s.Require().NoError(err)
}

func listed(id string, blk domain.BlockNumber, tokenId domain.TokenId, price string) *marketplace.ItemListed {
	return &marketplace.ItemListed{
		Meta: record.Meta{
			Id:          id,
			ChainId:     domain.ChainIdAnvil,
			BlockNumber: blk,
		},
		NftAddress: "0xbb",
		TokenId:    tokenId,
		Price:      price,
	}
}

func (s *recordRepoSuite) TestStoreIsIdempotent() {
	s.Require().NoError(s.repo.Store(s.ctx, listed("0x01", 1, "1", "100")))
	// same id with different content keeps the first write
	s.Require().NoError(s.repo.Store(s.ctx, listed("0x01", 1, "1", "999")))

	n, err := s.repo.Count(s.ctx, domain.TableItemListeds)
	s.Require().NoError(err)
	s.Equal(1, n)

	got := marketplace.ItemListed{}
	s.Require().NoError(s.repo.FindOne(s.ctx, domain.TableItemListeds, &got, record.WithTokenId("1")))
	s.Equal("100", got.Price)
}

func (s *recordRepoSuite) TestFindAll() {
	s.Require().NoError(s.repo.Store(s.ctx, listed("0x01", 1, "1", "100")))
	s.Require().NoError(s.repo.Store(s.ctx, listed("0x02", 2, "1", "200")))
	s.Require().NoError(s.repo.Store(s.ctx, listed("0x03", 3, "2", "300")))

	res := []marketplace.ItemListed{}
	s.Require().NoError(s.repo.FindAll(s.ctx, domain.TableItemListeds, &res, record.WithTokenId("1")))
	s.Len(res, 2)
	s.Equal("0x02", res[0].Id)

	res = []marketplace.ItemListed{}
	s.Require().NoError(s.repo.FindAll(s.ctx, domain.TableItemListeds, &res, record.WithPagination(1, 1)))
	s.Len(res, 1)
	s.Equal("0x02", res[0].Id)

	err := s.repo.FindOne(s.ctx, domain.TableItemListeds, &marketplace.ItemListed{}, record.WithTokenId("404"))
	s.ErrorIs(err, domain.ErrNotFound)
}
