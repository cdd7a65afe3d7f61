package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/nft"
	"github.com/andy-marketplace/goapi/domain/nft/mocks"
)

func newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)
	c.Set("ctx", ctx.Background())
	return c, rec
}

func TestGetOnchainNFTs(t *testing.T) {
	req := require.New(t)
	uc := mocks.NewUseCase(t)
	h := &handler{uc}

	uc.On("GetOnchainNFTs", mock.Anything).Return([]nft.NFT{{TokenId: "1", Price: "1.5"}}, nil).Once()
	c, rec := newContext("/nfts/onchain")
	req.NoError(h.getOnchainNFTs(c))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"price":"1.5"`)
}

func TestGetDetails(t *testing.T) {
	req := require.New(t)
	uc := mocks.NewUseCase(t)
	h := &handler{uc}

	uc.On("GetDetails", mock.Anything, domain.Address("0xbb"), domain.TokenId("x")).Return(nil, domain.ErrInvalidNumberFormat).Once()
	c, rec := newContext("/nfts/0xbb/x")
	c.SetParamNames("nftAddress", "tokenId")
	c.SetParamValues("0xbb", "x")
	req.NoError(h.getDetails(c))
	req.Equal(http.StatusBadRequest, rec.Code)
}

func TestGetMetadata(t *testing.T) {
	req := require.New(t)
	uc := mocks.NewUseCase(t)
	h := &handler{uc}

	c, rec := newContext("/metadata")
	req.NoError(h.getMetadata(c))
	req.Equal(http.StatusBadRequest, rec.Code)

	uc.On("GetMetadata", mock.Anything, "ipfs://Qm1").Return(&nft.Metadata{Name: "a"}, nil).Once()
	c, rec = newContext("/metadata?uri=ipfs://Qm1")
	req.NoError(h.getMetadata(c))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"name":"a"`)
}
