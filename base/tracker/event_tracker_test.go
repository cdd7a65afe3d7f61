package tracker

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/base/abi"
	bCtx "github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/metrics"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/chain"
	chainMocks "github.com/andy-marketplace/goapi/domain/chain/mocks"
	"github.com/andy-marketplace/goapi/domain/marketplace"
	"github.com/andy-marketplace/goapi/domain/mocks"
	"github.com/andy-marketplace/goapi/domain/record"
	recordMocks "github.com/andy-marketplace/goapi/domain/record/mocks"
)

// noTx runs fn directly
type noTx struct{}

func (noTx) RunWithTransaction(c bCtx.Ctx, fn func(bCtx.Ctx) error) error {
	return fn(c)
}

func Test_findDeployBlock(t *testing.T) {
	tests := []struct {
		currentBlock  uint64
		deployedBlock uint64
	}{
		{currentBlock: 12345, deployedBlock: 3},
		{currentBlock: 12345, deployedBlock: 4},
		{currentBlock: 12345, deployedBlock: 6000},
		{currentBlock: 12345, deployedBlock: 6001},
		{currentBlock: 12345, deployedBlock: 12001},
		{currentBlock: 12346, deployedBlock: 3},
		{currentBlock: 12346, deployedBlock: 6001},
		{currentBlock: 12346, deployedBlock: 12000},
	}
	ctx := bCtx.Background()
	for _, tt := range tests {
		tt := tt
		name := fmt.Sprintf("%d/%d", tt.deployedBlock, tt.currentBlock)
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			client := mocks.NewEthClientRepo(t)
			client.On("BlockNumber", mock.Anything).Return(tt.currentBlock, nil)
			client.On("CodeAt",
				mock.Anything,
				mock.AnythingOfType("common.Address"),
				mock.AnythingOfType("*big.Int"),
			).Return(
				codeAtFunc(tt.deployedBlock),
				nil,
			)
			blk, err := findDeployBlock(ctx, client, common.Address{})
			req.NoError(err)
			req.Equal(tt.deployedBlock, blk)
		})
	}
}

func TestEventTracker_loadCheckpoint(t *testing.T) {
	chainId := domain.ChainIdAnvil
	contractAddr := common.BigToAddress(big.NewInt(1))
	contractAddrStr := lowerHex(contractAddr)

	t.Run("exists in repo", func(t *testing.T) {
		req := require.New(t)
		trackerStateUseCase := mocks.NewTrackerStateUseCase(t)
		f := &EventTracker{
			chainId:             chainId,
			trackerStateUseCase: trackerStateUseCase,
			contractAddress:     contractAddr,
		}

		state := &domain.TrackerState{ChainId: chainId, ContractAddress: domain.Address(contractAddrStr), Version: Version, LastBlockProcessed: 20}
		trackerStateUseCase.On("Get", mock.Anything, state.ToId()).Return(state, nil)

		got, err := f.loadCheckpoint(bCtx.Background())
		req.NoError(err)
		req.Equal(state, got)
	})

	t.Run("version mismatch", func(t *testing.T) {
		req := require.New(t)
		trackerStateUseCase := mocks.NewTrackerStateUseCase(t)
		f := &EventTracker{
			chainId:             chainId,
			trackerStateUseCase: trackerStateUseCase,
			contractAddress:     contractAddr,
		}

		state := &domain.TrackerState{ChainId: chainId, ContractAddress: domain.Address(contractAddrStr), Version: Version + 1}
		trackerStateUseCase.On("Get", mock.Anything, state.ToId()).Return(state, nil)

		_, err := f.loadCheckpoint(bCtx.Background())
		req.Error(err)
	})

	t.Run("get from deployed block", func(t *testing.T) {
		req := require.New(t)
		trackerStateUseCase := mocks.NewTrackerStateUseCase(t)
		ethClient := mocks.NewEthClientRepo(t)
		f := &EventTracker{
			chainId:             chainId,
			clientWithArchive:   ethClient,
			trackerStateUseCase: trackerStateUseCase,
			contractAddress:     contractAddr,
		}

		deployedBlk := uint64(365)
		state := &domain.TrackerState{
			ChainId:               chainId,
			ContractAddress:       domain.Address(contractAddrStr),
			Version:               Version,
			LastBlockProcessed:    deployedBlk,
			LastLogIndexProcessed: -1,
		}
		trackerStateUseCase.On("Get", mock.Anything, state.ToId()).Return(nil, domain.ErrNotFound)
		trackerStateUseCase.On("Store", mock.Anything, state).Return(nil)
		ethClient.On("BlockNumber", mock.Anything).Return(uint64(1024), nil)
		ethClient.On("CodeAt",
			mock.Anything,
			mock.AnythingOfType("common.Address"),
			mock.AnythingOfType("*big.Int"),
		).Return(
			codeAtFunc(deployedBlk),
			nil,
		)

		got, err := f.loadCheckpoint(bCtx.Background())
		req.NoError(err)
		req.Equal(state, got)
	})

	t.Run("configured start block", func(t *testing.T) {
		req := require.New(t)
		trackerStateUseCase := mocks.NewTrackerStateUseCase(t)
		f := &EventTracker{
			chainId:             chainId,
			trackerStateUseCase: trackerStateUseCase,
			contractAddress:     contractAddr,
			startBlock:          42,
		}

		trackerStateUseCase.On("Get", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
		trackerStateUseCase.On("Store", mock.Anything, mock.AnythingOfType("*domain.TrackerState")).Return(nil)

		got, err := f.loadCheckpoint(bCtx.Background())
		req.NoError(err)
		req.Equal(uint64(42), got.LastBlockProcessed)
	})
}

func itemListedLog(t *testing.T, blk uint64, index uint, tokenId int64) types.Log {
	ev := abi.MarketplaceABI.Events["ItemListed"]
	category, err := abi.FormatBytes32String("Art")
	require.NoError(t, err)
	data, err := ev.Inputs.NonIndexed().Pack(
		big.NewInt(1e18),
		false,
		category,
		big.NewInt(1700000000),
		"Genesis",
		common.HexToAddress("0x00000000000000000000000000000000000000c1"),
	)
	require.NoError(t, err)
	return types.Log{
		Address: common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		Topics: []common.Hash{
			ev.ID,
			common.BytesToHash(common.HexToAddress("0x00000000000000000000000000000000000000a1").Bytes()),
			common.BytesToHash(common.HexToAddress("0x00000000000000000000000000000000000000bb").Bytes()),
			common.BigToHash(big.NewInt(tokenId)),
		},
		Data:        data,
		BlockNumber: blk,
		TxHash:      common.BigToHash(big.NewInt(int64(blk))),
		Index:       index,
	}
}

func rangeIs(begin, end uint64) interface{} {
	return mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return q.FromBlock.Uint64() == begin && q.ToBlock.Uint64() == end
	})
}

func TestEventTracker_fetchSpan(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	rpc := mocks.NewEthClientRepo(t)
	trackerStateUseCase := mocks.NewTrackerStateUseCase(t)
	blockUseCase := chainMocks.NewBlockUseCase(t)
	recordUseCase := recordMocks.NewUseCase(t)
	sink := recordMocks.NewSink(t)

	f := &EventTracker{
		chainId:             domain.ChainIdAnvil,
		q:                   noTx{},
		met:                 metrics.New("test"),
		rpcClient:           rpc,
		trackerStateUseCase: trackerStateUseCase,
		blockUseCase:        blockUseCase,
		eventHandler: NewMarketplaceEventHandler(&RecordEventHandlerCfg{
			RecordUseCase: recordUseCase,
			Sinks:         []record.Sink{sink},
		}),
		trackerState: &domain.TrackerState{
			ChainId:               domain.ChainIdAnvil,
			LastBlockProcessed:    10,
			LastLogIndexProcessed: 1,
		},
	}

	removed := itemListedLog(t, 13, 0, 3)
	removed.Removed = true
	rpc.On("FilterLogs", mock.Anything, rangeIs(10, 20)).Return(nil, errors.New("query returned more than 10000 results")).Once()
	rpc.On("FilterLogs", mock.Anything, rangeIs(10, 15)).Return([]types.Log{
		itemListedLog(t, 10, 1, 1),
		itemListedLog(t, 12, 0, 2),
		removed,
	}, nil).Once()
	rpc.On("FilterLogs", mock.Anything, rangeIs(16, 20)).Return([]types.Log{}, nil).Once()

	blkTime := time.Unix(1700000000, 0)
	blockUseCase.On("FindOne", mock.Anything, &chain.BlockId{ChainId: domain.ChainIdAnvil, Number: 12}).Return(&chain.Block{Time: blkTime}, nil).Once()

	var stored []record.Record
	recordUseCase.On("Store", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = append(stored, args.Get(1).(record.Record))
	}).Return(nil).Once()
	sink.On("Put", mock.Anything, mock.MatchedBy(func(rs []record.Record) bool { return len(rs) == 1 })).Return(nil).Once()

	var checkpoints [][2]int64
	trackerStateUseCase.On("Update", mock.Anything, mock.AnythingOfType("*domain.TrackerState")).Run(func(args mock.Arguments) {
		s := args.Get(1).(*domain.TrackerState)
		checkpoints = append(checkpoints, [2]int64{int64(s.LastBlockProcessed), s.LastLogIndexProcessed})
	}).Return(nil)

	req.NoError(f.fetchSpan(ctx, blockSpan{10, 20}))

	req.Equal([][2]int64{{12, 0}, {16, -1}, {21, -1}}, checkpoints)
	req.Equal(uint64(21), f.trackerState.LastBlockProcessed)

	req.Len(stored, 1)
	listed, ok := stored[0].(*marketplace.ItemListed)
	req.True(ok)
	req.Equal(domain.TokenId("2"), listed.TokenId)
	req.Equal("1000000000000000000", listed.Price)
	req.Equal("Genesis", listed.CollectionName)
	req.Equal(blkTime.Unix(), listed.BlockTimestamp)
	req.Equal(record.MakeId(common.BigToHash(big.NewInt(12)), 0), listed.Id)
}

func TestEventTracker_fetchSpanSingleBlockError(t *testing.T) {
	req := require.New(t)
	rpc := mocks.NewEthClientRepo(t)
	f := &EventTracker{
		q:            noTx{},
		met:          metrics.New("test"),
		rpcClient:    rpc,
		trackerState: &domain.TrackerState{},
	}
	errRpc := errors.New("rpc down")
	rpc.On("FilterLogs", mock.Anything, rangeIs(5, 5)).Return(nil, errRpc).Once()

	req.ErrorIs(f.fetchSpan(bCtx.Background(), blockSpan{5, 5}), errRpc)
}

func TestRecordEventHandler_unknownTopic(t *testing.T) {
	req := require.New(t)
	recordUseCase := recordMocks.NewUseCase(t)
	h := NewMarketplaceEventHandler(&RecordEventHandlerCfg{RecordUseCase: recordUseCase})

	l := logWithBlockTime{Log: types.Log{Topics: []common.Hash{common.HexToHash("0x01")}}}
	req.NoError(h.ProcessEvents(bCtx.Background(), []logWithBlockTime{l}))
}

func TestRecordEventHandler_filterTopics(t *testing.T) {
	req := require.New(t)
	h := NewMarketplaceEventHandler(&RecordEventHandlerCfg{})
	topics := h.GetFilterTopics()
	req.Len(topics, 1)
	req.Len(topics[0], 11)
	req.Contains(topics[0], itemListedSig)
}

func codeAtFunc(deployedBlock uint64) func(context.Context, common.Address, *big.Int) []byte {
	return func(_ context.Context, _ common.Address, blk *big.Int) []byte {
		if blk.Uint64() >= deployedBlock {
			return []byte("1")
		}
		return []byte{}
	}
}

func TestEventTracker_StartReportsPanic(t *testing.T) {
	req := require.New(t)
	trackerStateUseCase := mocks.NewTrackerStateUseCase(t)
	errCh := make(chan error, 1)
	f := &EventTracker{
		chainId:             domain.ChainIdAnvil,
		trackerStateUseCase: trackerStateUseCase,
		contractAddress:     common.BigToAddress(big.NewInt(1)),
		trackerTag:          domain.DefaultTag,
		errorCh:             errCh,
		stoppedCh:           make(chan interface{}),
	}
	trackerStateUseCase.On("Get", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("boom")
	}).Once()

	f.Start(bCtx.Background())
	f.Wait()
	select {
	case err := <-errCh:
		req.ErrorIs(err, errTrackerPanic)
		req.Contains(err.Error(), "boom")
	case <-time.After(time.Second):
		t.Fatal("panic not reported")
	}
}

func Test_findDeployBlockNoCode(t *testing.T) {
	client := mocks.NewEthClientRepo(t)
	client.On("BlockNumber", mock.Anything).Return(uint64(100), nil)
	client.On("CodeAt", mock.Anything, mock.Anything, mock.Anything).Return([]byte{}, nil)
	_, err := findDeployBlock(bCtx.Background(), client, common.Address{})
	require.ErrorIs(t, err, errNoCode)
}

func TestEventTracker_blockTimeFromHeader(t *testing.T) {
	req := require.New(t)
	rpc := mocks.NewEthClientRepo(t)
	blockUseCase := chainMocks.NewBlockUseCase(t)
	f := &EventTracker{
		chainId:      domain.ChainIdAnvil,
		rpcClient:    rpc,
		blockUseCase: blockUseCase,
	}

	id := &chain.BlockId{ChainId: domain.ChainIdAnvil, Number: 7}
	blockUseCase.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound).Once()
	header := &types.Header{Number: big.NewInt(7), Time: 1700000123}
	rpc.On("HeaderByNumber", mock.Anything, big.NewInt(7)).Return(header, nil).Once()
	blockUseCase.On("Upsert", mock.Anything, mock.MatchedBy(func(b *chain.Block) bool {
		return b.Number == 7 && b.Time.Unix() == 1700000123 && string(b.Hash) == lowerHex(header.Hash())
	})).Return(nil).Once()

	got, err := f.blockTime(bCtx.Background(), 7)
	req.NoError(err)
	req.Equal(int64(1700000123), got.Unix())
}

func TestEventTracker_commitKeepsCheckpointOnFailure(t *testing.T) {
	req := require.New(t)
	trackerStateUseCase := mocks.NewTrackerStateUseCase(t)
	start := &domain.TrackerState{LastBlockProcessed: 10, LastLogIndexProcessed: 3}
	f := &EventTracker{
		q:                   noTx{},
		trackerStateUseCase: trackerStateUseCase,
		trackerState:        start,
	}
	errDb := errors.New("write conflict")
	trackerStateUseCase.On("Update", mock.Anything, mock.Anything).Return(errDb).Once()

	req.ErrorIs(f.commit(bCtx.Background(), nil, 11, -1), errDb)
	req.Same(start, f.trackerState)

	trackerStateUseCase.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
	req.NoError(f.commit(bCtx.Background(), nil, 11, -1))
	req.Equal(uint64(11), f.trackerState.LastBlockProcessed)
	req.Equal(int64(-1), f.trackerState.LastLogIndexProcessed)
	req.Equal(uint64(10), start.LastBlockProcessed)
}

func TestEventTracker_skipMissingBlockStartsAfterHead(t *testing.T) {
	req := require.New(t)
	heads := mocks.NewEthClientRepo(t)
	heads.On("BlockNumber", mock.Anything).Return(uint64(500), nil).Once()
	f := &EventTracker{chainId: domain.ChainIdAnvil, heads: heads, skipMissingBlock: true}

	req.NoError(f.initCheckpoint(bCtx.Background()))
	req.Equal(uint64(501), f.trackerState.LastBlockProcessed)
	req.Equal(int64(-1), f.trackerState.LastLogIndexProcessed)
}

func TestEventTracker_tickRetriesFailedSpan(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	heads := mocks.NewEthClientRepo(t)
	rpc := mocks.NewEthClientRepo(t)
	trackerStateUseCase := mocks.NewTrackerStateUseCase(t)
	blockUseCase := chainMocks.NewBlockUseCase(t)
	recordUseCase := recordMocks.NewUseCase(t)

	f := &EventTracker{
		chainId:             domain.ChainIdAnvil,
		q:                   noTx{},
		met:                 metrics.New("test"),
		heads:               heads,
		rpcClient:           rpc,
		polling:             true,
		trackerStateUseCase: trackerStateUseCase,
		blockUseCase:        blockUseCase,
		eventHandler:        NewMarketplaceEventHandler(&RecordEventHandlerCfg{RecordUseCase: recordUseCase}),
		trackerState: &domain.TrackerState{
			ChainId:               domain.ChainIdAnvil,
			LastBlockProcessed:    10,
			LastLogIndexProcessed: -1,
		},
	}

	heads.On("BlockNumber", mock.Anything).Return(uint64(12), nil)
	rpc.On("FilterLogs", mock.Anything, rangeIs(10, 12)).Return([]types.Log{itemListedLog(t, 11, 0, 2)}, nil).Twice()
	blockUseCase.On("FindOne", mock.Anything, &chain.BlockId{ChainId: domain.ChainIdAnvil, Number: 11}).Return(&chain.Block{Time: time.Unix(1700000000, 0)}, nil)

	errDb := errors.New("write conflict")
	recordUseCase.On("Store", mock.Anything, mock.Anything).Return(errDb).Once()
	recordUseCase.On("Store", mock.Anything, mock.Anything).Return(nil).Once()
	trackerStateUseCase.On("Update", mock.Anything, mock.AnythingOfType("*domain.TrackerState")).Return(nil)

	var due dueBlocks
	due.add(11)

	f.tick(ctx, &due)
	req.Equal(uint64(10), f.trackerState.LastBlockProcessed)
	req.Equal(int64(-1), f.trackerState.LastLogIndexProcessed)
	req.True(due.ready(12))
	trackerStateUseCase.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	f.tick(ctx, &due)
	req.Equal(uint64(13), f.trackerState.LastBlockProcessed)
	req.False(due.ready(12))
	recordUseCase.AssertNumberOfCalls(t, "Store", 2)
}

func TestEventTracker_tickKeepsRunningWhenHeadFails(t *testing.T) {
	heads := mocks.NewEthClientRepo(t)
	f := &EventTracker{
		met:          metrics.New("test"),
		heads:        heads,
		trackerState: &domain.TrackerState{LastBlockProcessed: 10},
	}
	heads.On("BlockNumber", mock.Anything).Return(uint64(0), errors.New("rpc down")).Once()

	var due dueBlocks
	due.add(11)
	f.tick(bCtx.Background(), &due)
	require.True(t, due.ready(11))
	require.Equal(t, uint64(10), f.trackerState.LastBlockProcessed)
}
