package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/database/mongoclient"
	"github.com/andy-marketplace/goapi/base/ethereum"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/base/tracker"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
	mmiddleware "github.com/andy-marketplace/goapi/middleware"
	"github.com/andy-marketplace/goapi/service/query"
	cRepo "github.com/andy-marketplace/goapi/stores/chain/repository"
	cUseCase "github.com/andy-marketplace/goapi/stores/chain/usecase"
	recordRepo "github.com/andy-marketplace/goapi/stores/event_record/repository"
	"github.com/andy-marketplace/goapi/stores/event_record/sink"
	recordUseCase "github.com/andy-marketplace/goapi/stores/event_record/usecase"
	"github.com/andy-marketplace/goapi/stores/tracker_state/repository/mongo"
	"github.com/andy-marketplace/goapi/stores/tracker_state/usecase"
)

const saleNotifierTag = "sale-notifier"

var configFile = pflag.String("config", "infra/configs/tracker/config.yaml", "yaml config file")

func init() {
	pflag.Parse()
	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if err := log.Setup(viper.GetString("log.level"), viper.GetBool("debug")); err != nil {
		panic(err)
	}
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}

	// overwrite active network in the config if the environment has been set
	viper.BindEnv("ACTIVENETWORK")
}

func main() {
	defer log.Sync()
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	// start server to pass cloud run health check
	startEchoServer()

	ctxTimeout := viper.GetDuration("context.timeout")
	followDistance := viper.GetUint64("tracker.followDistance")
	rpcConcurrency := viper.GetInt("tracker.rpcConcurrency")
	polling := viper.GetBool("tracker.polling")
	activeNetwork := viper.GetString("activeNetwork")
	networkInfo := viper.Sub("networks." + activeNetwork)
	chainId := domain.ChainId(networkInfo.GetInt64("chainId"))
	wsUrl := networkInfo.GetString("wsUrl")
	rpcUrl := networkInfo.GetString("rpcUrl")
	archiveRpcUrl := networkInfo.GetString("archiveRpcUrl")

	contractInfo := viper.Sub("contract." + activeNetwork)
	marketplaceAddress := common.HexToAddress(contractInfo.GetString("marketplace.address"))
	marketplaceStartBlock := contractInfo.GetUint64("marketplace.startBlock")
	collectionAddress := common.HexToAddress(contractInfo.GetString("collection.address"))
	collectionStartBlock := contractInfo.GetUint64("collection.startBlock")

	ctx.WithFields(log.Fields{
		"network":        activeNetwork,
		"chainId":        chainId,
		"wsUrl":          wsUrl,
		"rpcUrl":         rpcUrl,
		"archiveRpcUrl":  archiveRpcUrl,
		"marketplace":    marketplaceAddress,
		"collection":     collectionAddress,
		"followDistance": followDistance,
	}).Info("config")

	ctx.Info("init mongo")
	q := initMongo()
	ctx.Info("connecting eth clients")
	wsClient, rpcClient, archiveEthClient := initEthClient(ctx, wsUrl, rpcUrl, archiveRpcUrl)
	throttledClient := ethereum.NewThrottledClient(rpcClient, rpcConcurrency)
	errCh := make(chan error, 10)

	// repos
	trackerStateRepo := mongo.NewTrackerStateMongoRepo(q)
	blockRepo := cRepo.NewBlockRepo(q)
	records := recordRepo.New(q)

	// usecases
	tsUseCase := usecase.NewTrackerStateUseCase(trackerStateRepo, ctxTimeout)
	blockUseCase := cUseCase.NewBlockUseCase(blockRepo)
	recordUC := recordUseCase.New(records, ctxTimeout)

	sinks := initSinks(ctx)
	defer func() {
		for _, s := range sinks {
			if err := s.Close(); err != nil {
				ctx.WithField("err", err).Error("sink.Close failed")
			}
		}
	}()
	handlerCfg := &tracker.RecordEventHandlerCfg{
		RecordUseCase: recordUC,
		Sinks:         sinks,
	}

	heads := tracker.NewHeadWatcher(wsClient, errCh)
	if err := heads.Start(ctx); err != nil {
		ctx.WithField("err", err).Panic("heads.Start failed")
	}

	newTracker := func(addr common.Address, startBlock uint64, tag string, handler tracker.EventHandler) *tracker.EventTracker {
		t, err := tracker.NewEventTracker(&tracker.EventTrackerCfg{
			ChainId:             chainId,
			Heads:               heads,
			Mongo:               q,
			WsClient:            wsClient,
			RpcClient:           throttledClient,
			ClientWithArchive:   archiveEthClient,
			TrackerStateUseCase: tsUseCase,
			BlockUseCase:        blockUseCase,
			ContractAddress:     addr,
			StartBlock:          startBlock,
			EventHandl:          handler,
			ErrorCh:             errCh,
			TrackerTag:          tag,
			FollowDistance:      followDistance,
			Polling:             polling,
		})
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":      err,
				"contract": addr,
				"tag":      tag,
			}).Panic("tracker.NewEventTracker failed")
		}
		return t
	}

	trackers := []*tracker.EventTracker{
		newTracker(marketplaceAddress, marketplaceStartBlock, domain.DefaultTag, tracker.NewMarketplaceEventHandler(handlerCfg)),
		newTracker(collectionAddress, collectionStartBlock, domain.DefaultTag, tracker.NewCollectionEventHandler(handlerCfg)),
	}

	if botKey := viper.GetString("discord.botKey"); len(botKey) > 0 {
		notifier, err := tracker.NewSaleNotifierHandler(tracker.SaleNotifierConfig{
			ChainId:          chainId,
			DiscordBotKey:    botKey,
			DiscordChannelId: viper.GetString("discord.channelId"),
			SiteUrl:          viper.GetString("discord.siteUrl"),
		})
		if err != nil {
			ctx.WithField("err", err).Panic("tracker.NewSaleNotifierHandler failed")
		}
		// a fresh notifier starts at the head instead of replaying past sales
		head, _ := heads.BlockNumber(ctx)
		trackers = append(trackers, newTracker(marketplaceAddress, head, saleNotifierTag, notifier))
	}

	for _, t := range trackers {
		t.Start(ctx)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case err := <-errCh:
		ctx.WithField("err", err).Error("tracker stopped with error")
	case sig := <-quit:
		ctx.WithField("signal", sig).Info("received signal")
	}

	go func() {
		for range errCh {
		}
	}()
	cancel()

	for _, t := range trackers {
		t.Wait()
	}
	heads.Wait()
}

// initSinks mirrors stored records outside mongo when configured
func initSinks(ctx bCtx.Ctx) []record.Sink {
	sinks := []record.Sink{}
	if dsn := viper.GetString("mirror.postgresDsn"); len(dsn) > 0 {
		s, err := sink.NewPostgresSink(ctx, dsn)
		if err != nil {
			ctx.WithField("err", err).Panic("sink.NewPostgresSink failed")
		}
		sinks = append(sinks, s)
	}
	if path := viper.GetString("mirror.jsonlFile"); len(path) > 0 {
		s, err := sink.OpenJSONLFile(path)
		if err != nil {
			ctx.WithField("err", err).Panic("sink.OpenJSONLFile failed")
		}
		sinks = append(sinks, s)
	}
	return sinks
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware("tracker")
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"healthy": "ok"})
	})

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	return query.New(mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:            viper.GetString("mongo.uri"),
		AuthDBName:     viper.GetString("mongo.authDBName"),
		DBName:         viper.GetString("mongo.dbName"),
		SSL:            viper.GetBool("mongo.enableSSL"),
		Majority:       true,
		PoolMultiplier: 2,
	}), viper.GetBool("mongo.checkIndex"))
}

func initEthClient(ctx bCtx.Ctx, wsUrl, rpcUrl, archiveRpcUrl string) (*ethclient.Client, *ethclient.Client, *ethclient.Client) {
	dial := func(url, name string) *ethclient.Client {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
				"url": url,
			}).Panic("failed to connect " + name)
		}
		return client
	}
	return dial(wsUrl, "ws rpc"), dial(rpcUrl, "rpc"), dial(archiveRpcUrl, "archive rpc")
}
