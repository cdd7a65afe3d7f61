package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/ethereum/go-ethereum/ethclient"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/database/mongoclient"
	"github.com/andy-marketplace/goapi/base/database/redisclient"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/base/metrics"
	bValidator "github.com/andy-marketplace/goapi/base/validator"
	"github.com/andy-marketplace/goapi/domain"
	mmiddleware "github.com/andy-marketplace/goapi/middleware"
	"github.com/andy-marketplace/goapi/service/cache"
	"github.com/andy-marketplace/goapi/service/cache/provider/compound"
	"github.com/andy-marketplace/goapi/service/cache/provider/primitive"
	redisprovider "github.com/andy-marketplace/goapi/service/cache/provider/redis"
	"github.com/andy-marketplace/goapi/service/chain"
	"github.com/andy-marketplace/goapi/service/chain/contract"
	"github.com/andy-marketplace/goapi/service/ens"
	"github.com/andy-marketplace/goapi/service/pinata"
	"github.com/andy-marketplace/goapi/service/query"
	"github.com/andy-marketplace/goapi/service/redis"
	account_delivery "github.com/andy-marketplace/goapi/stores/account/delivery/http"
	account_repository "github.com/andy-marketplace/goapi/stores/account/repository"
	account_usecase "github.com/andy-marketplace/goapi/stores/account/usecase"
	auth_delivery "github.com/andy-marketplace/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/andy-marketplace/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/andy-marketplace/goapi/stores/auth/usecase"
	ens_delivery "github.com/andy-marketplace/goapi/stores/ens/delivery/http"
	record_repository "github.com/andy-marketplace/goapi/stores/event_record/repository"
	record_usecase "github.com/andy-marketplace/goapi/stores/event_record/usecase"
	file_delivery "github.com/andy-marketplace/goapi/stores/file/delivery/http"
	file_usecase "github.com/andy-marketplace/goapi/stores/file/usecase"
	form_delivery "github.com/andy-marketplace/goapi/stores/form/delivery/http"
	form_usecase "github.com/andy-marketplace/goapi/stores/form/usecase"
	hc_delivery "github.com/andy-marketplace/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/andy-marketplace/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/andy-marketplace/goapi/stores/healthcheck/usecase"
	marketplace_delivery "github.com/andy-marketplace/goapi/stores/marketplace/delivery/http"
	marketplace_usecase "github.com/andy-marketplace/goapi/stores/marketplace/usecase"
	nft_delivery "github.com/andy-marketplace/goapi/stores/nft/delivery/http"
	nft_usecase "github.com/andy-marketplace/goapi/stores/nft/usecase"
	collection_delivery "github.com/andy-marketplace/goapi/stores/nftcollection/delivery/http"
	collection_usecase "github.com/andy-marketplace/goapi/stores/nftcollection/usecase"
	ts_repository "github.com/andy-marketplace/goapi/stores/tracker_state/repository/mongo"
	ts_usecase "github.com/andy-marketplace/goapi/stores/tracker_state/usecase"
	webresource_repository "github.com/andy-marketplace/goapi/stores/web_resource/repository"
	webresource_usecase "github.com/andy-marketplace/goapi/stores/web_resource/usecase"

	_ "github.com/andy-marketplace/goapi/app/api/docs"
)

//go:generate swag init -g main.go -o docs

var configFile = pflag.String("config", "infra/configs/config.yaml", "yaml config file")

func init() {
	pflag.Parse()
	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.AutomaticEnv()
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
}

// layeredCache keeps hot entries in process memory in front of redis
func layeredCache(name string, redis redis.Service, localTtl, redisTtl time.Duration) cache.Service {
	return cache.New(cache.ServiceConfig{
		Ttl: redisTtl,
		Pfx: name,
		Cache: compound.New(
			compound.Layer{Provider: primitive.New(name, 32), MaxTtl: localTtl},
			compound.Layer{Provider: redisprovider.New(redis)},
		),
	})
}

//	@title			NFT Marketplace API
//	@version		1.0
//	@description	Marketplace listings, collection mints and transaction preparation.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrieve token from #/account/post_account_sign_in and apply with `bearer {token}`
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware("api")
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	chainId := domain.ChainId(viper.GetInt64("chainId"))
	ctxTimeout := viper.GetDuration("context.timeout")
	httpTimeout := viper.GetDuration("http.timeout")
	marketplaceAddress := domain.Address(viper.GetString("contract.marketplace")).ToLower()
	collectionAddress := domain.Address(viper.GetString("contract.collection")).ToLower()
	context.WithFields(log.Fields{
		"chainId":     chainId,
		"marketplace": marketplaceAddress,
		"collection":  collectionAddress,
	}).Info("config")

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:            viper.GetString("mongo.uri"),
		AuthDBName:     viper.GetString("mongo.authDBName"),
		DBName:         viper.GetString("mongo.dbName"),
		SSL:            viper.GetBool("mongo.enableSSL"),
		Majority:       true,
		PoolMultiplier: 2,
	})
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnectRedis(redisclient.Config{
		URI:            viper.GetString("redis_cache.uri"),
		Password:       viper.GetString("redis_cache.password"),
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Attempts:       4,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init chain service
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: map[domain.ChainId]string{chainId: viper.GetString("network.rpcUrl")},
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	marketplaceContract := contract.NewMarketplace(chainService, map[domain.ChainId]domain.Address{chainId: marketplaceAddress})
	collectionContract := contract.NewNFTCollection(chainService)

	// ens lives on ethereum mainnet
	var ensService ens.ENS
	if mainnetUrl := viper.GetString("network.mainnetRpcUrl"); len(mainnetUrl) > 0 {
		mainnet, err := ethclient.DialContext(context, mainnetUrl)
		if err != nil {
			context.WithField("err", err).Warn("ethclient.DialContext mainnet failed")
		} else {
			ensService = ens.New(mainnet, layeredCache("ens", redisCache, time.Minute, time.Hour))
		}
	}

	// web resources
	httpReader := webresource_repository.NewHttpReaderRepo(&webresource_repository.HttpReaderCfg{
		Client:  &http.Client{},
		Timeout: httpTimeout,
	})
	ipfsReader := webresource_repository.NewIpfsGatewayReaderRepo(&webresource_repository.HttpReaderCfg{
		Client:  &http.Client{},
		Timeout: httpTimeout,
	}, viper.GetString("ipfs.gateway"))
	if ipfsApi := viper.GetString("ipfs.api"); len(ipfsApi) > 0 {
		ipfsReader = webresource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(ipfsApi), viper.GetDuration("ipfs.timeout"))
	}
	webResourceCfg := &webresource_usecase.WebResourceUseCaseCfg{
		HttpReader:    httpReader,
		IpfsReader:    ipfsReader,
		DataUriReader: webresource_repository.NewDataUriReaderRepo(),
		HttpGateway:   viper.GetString("ipfs.gateway"),
	}
	if bucket := viper.GetString("cloud-storage.bucket"); len(bucket) > 0 {
		storageClient, err := storage.NewClient(context)
		if err != nil {
			context.WithField("err", err).Panic("storage.NewClient failed")
		}
		writer, err := webresource_repository.NewCloudStorageWriterRepo(&webresource_repository.CloudStorageWriterRepoCfg{
			Timeout:    viper.GetDuration("cloud-storage.timeout"),
			Client:     storageClient,
			BucketName: bucket,
			Url:        viper.GetString("cloud-storage.url"),
		})
		if err != nil {
			context.WithField("err", err).Panic("NewCloudStorageWriterRepo failed")
		}
		webResourceCfg.StorageWriter = writer
	}
	webResource := webresource_usecase.NewWebResourceUseCase(webResourceCfg)

	pinataService := pinata.New(pinata.Config{
		GatewayUrl: viper.GetString("pinata.gateway"),
		Jwt:        viper.GetString("pinata.jwt"),
		ApiKey:     viper.GetString("pinata.apiKey"),
		ApiSecret:  viper.GetString("pinata.apiSecret"),
		Timeout:    viper.GetDuration("pinata.timeout"),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	accountRepo := account_repository.New(q, redisCache)
	recordRepo := record_repository.New(q)
	trackerStateRepo := ts_repository.NewTrackerStateMongoRepo(q)

	records := record_usecase.New(recordRepo, ctxTimeout)
	trackerStates := ts_usecase.NewTrackerStateUseCase(trackerStateRepo, ctxTimeout)
	hc := hc_usecase.New(hcRepo, trackerStates, chainId)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetDuration("auth.ttl"))
	account := account_usecase.NewAccountUseCase(&account_usecase.AccountUseCaseCfg{
		Repo:         accountRepo,
		Auth:         auth,
		SignatureMsg: viper.GetString("auth.signatureMsg"),
	})
	file := file_usecase.New(&file_usecase.Cfg{
		Pinata:      pinataService,
		WebResource: webResource,
	})
	marketplace := marketplace_usecase.New(records)
	collection := collection_usecase.New(records)
	nft := nft_usecase.NewNFTUseCase(&nft_usecase.NFTUseCaseCfg{
		ChainId:       chainId,
		Marketplace:   marketplaceContract,
		Collection:    collectionContract,
		WebResource:   webResource,
		MetadataCache: layeredCache("metadata", redisCache, 5*time.Minute, 24*time.Hour),
		Listings:      marketplace,
		Mints:         collection,
		ENS:           ensService,
		Workers:       viper.GetInt("nft.workers"),
	})
	form := form_usecase.New(&form_usecase.Cfg{
		ChainId:           chainId,
		CollectionAddress: collectionAddress,
		Marketplace:       marketplaceContract,
		Collection:        collectionContract,
	})

	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, account, authMiddleware, viper.GetString("auth.signatureMsg"))
	account_delivery.New(e, account, authMiddleware)
	marketplace_delivery.New(e, marketplace)
	collection_delivery.New(e, collection)
	nft_delivery.New(e, nft)
	file_delivery.New(e, file)
	form_delivery.New(e, form, authMiddleware)
	if ensService != nil {
		ens_delivery.New(e, ensService)
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
