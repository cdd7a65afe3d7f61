package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	bCtx "github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/database/mongoclient"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/base/validator"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/marketplace"
	"github.com/andy-marketplace/goapi/domain/nftcollection"
	"github.com/andy-marketplace/goapi/domain/record"
	"github.com/andy-marketplace/goapi/service/query"
	recordRepo "github.com/andy-marketplace/goapi/stores/event_record/repository"
	"github.com/andy-marketplace/goapi/stores/event_record/sink"
	recordUseCase "github.com/andy-marketplace/goapi/stores/event_record/usecase"
	tsRepo "github.com/andy-marketplace/goapi/stores/tracker_state/repository/mongo"
	tsUseCase "github.com/andy-marketplace/goapi/stores/tracker_state/usecase"
)

func main() {
	root := &cobra.Command{
		Use:          "recordctl",
		Short:        "Operate on indexed marketplace and collection records",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			viper.SetConfigType("yaml")
			viper.SetConfigFile(cfgFile)
			viper.AutomaticEnv()
			if err := viper.ReadInConfig(); err != nil {
				return err
			}
			return log.Setup(viper.GetString("log.level"), false)
		},
	}
	root.PersistentFlags().String("config", "infra/configs/tracker/config.yaml", "yaml config file")
	root.PersistentFlags().Int64("chain-id", 0, "chain id, defaults to the active network of the config")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Copy stored records to a JSONL file or a Postgres table",
		RunE:  runExport,
	}
	exportCmd.Flags().String("events", "all", "marketplace, collection or all")
	exportCmd.Flags().String("out", "", "output JSONL path")
	exportCmd.Flags().String("pg-dsn", "", "Postgres DSN")
	exportCmd.Flags().Uint64("from-block", 0, "only records at or after this block")
	exportCmd.Flags().Int32("page-size", sink.DefaultExportPageSize, "records per read")
	root.AddCommand(exportCmd)

	rewindCmd := &cobra.Command{
		Use:   "rewind",
		Short: "Move a tracker checkpoint back so later blocks are scanned again",
		RunE:  runRewind,
	}
	rewindCmd.Flags().String("contract", "", "tracked contract address")
	rewindCmd.Flags().String("tag", domain.DefaultTag, "tracker tag")
	rewindCmd.Flags().Uint64("to-block", 0, "last block kept as processed")
	_ = rewindCmd.MarkFlagRequired("contract")
	_ = rewindCmd.MarkFlagRequired("to-block")
	root.AddCommand(rewindCmd)

	statesCmd := &cobra.Command{
		Use:   "states",
		Short: "Print tracker checkpoints",
		RunE:  runStates,
	}
	root.AddCommand(statesCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func chainId(cmd *cobra.Command) domain.ChainId {
	if id, _ := cmd.Flags().GetInt64("chain-id"); id != 0 {
		return domain.ChainId(id)
	}
	network := viper.GetString("activeNetwork")
	return domain.ChainId(viper.GetInt64(fmt.Sprintf("networks.%s.chainId", network)))
}

func initMongo() query.Mongo {
	return query.New(mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:            viper.GetString("mongo.uri"),
		AuthDBName:     viper.GetString("mongo.authDBName"),
		DBName:         viper.GetString("mongo.dbName"),
		SSL:            viper.GetBool("mongo.enableSSL"),
		Majority:       true,
		PoolMultiplier: 1,
	}), false)
}

func kindsOf(events string) (record.Kinds, error) {
	switch events {
	case "marketplace":
		return marketplace.Kinds, nil
	case "collection":
		return nftcollection.Kinds, nil
	case "all":
		res := record.Kinds{}
		for k, v := range marketplace.Kinds {
			res["marketplace."+k] = v
		}
		for k, v := range nftcollection.Kinds {
			res["collection."+k] = v
		}
		return res, nil
	}
	return nil, domain.ErrUnknownEvent
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := bCtx.From(cmd.Context())

	events, _ := cmd.Flags().GetString("events")
	out, _ := cmd.Flags().GetString("out")
	dsn, _ := cmd.Flags().GetString("pg-dsn")
	fromBlock, _ := cmd.Flags().GetUint64("from-block")
	pageSize, _ := cmd.Flags().GetInt32("page-size")

	kinds, err := kindsOf(events)
	if err != nil {
		return err
	}

	var s record.Sink
	switch {
	case len(out) > 0:
		s, err = sink.OpenJSONLFile(out)
	case len(dsn) > 0:
		s, err = sink.NewPostgresSink(ctx, dsn)
	default:
		return fmt.Errorf("one of --out or --pg-dsn is required")
	}
	if err != nil {
		return err
	}
	defer s.Close()

	records := recordUseCase.New(recordRepo.New(initMongo()), time.Minute)
	opts := []record.FindOptions{record.WithChainId(chainId(cmd))}
	if fromBlock > 0 {
		opts = append(opts, record.WithFromBlock(domain.BlockNumber(fromBlock)))
	}

	start := time.Now()
	n, err := sink.Export(ctx, records, kinds, s, pageSize, opts...)
	ctx.WithFields(log.Fields{
		"events": events,
		"count":  n,
		"took":   time.Since(start).String(),
	}).Info("export finished")
	return err
}

func runRewind(cmd *cobra.Command, _ []string) error {
	ctx := bCtx.From(cmd.Context())

	contract, _ := cmd.Flags().GetString("contract")
	tag, _ := cmd.Flags().GetString("tag")
	toBlock, _ := cmd.Flags().GetUint64("to-block")
	if !validator.IsValidAddress(contract) {
		return domain.ErrInvalidAddress
	}

	states := tsUseCase.NewTrackerStateUseCase(tsRepo.NewTrackerStateMongoRepo(initMongo()), 10*time.Second)
	return states.Rewind(ctx, &domain.TrackerStateId{
		ChainId:         chainId(cmd),
		ContractAddress: domain.Address(contract).ToLower(),
		Tag:             tag,
	}, toBlock)
}

func runStates(cmd *cobra.Command, _ []string) error {
	ctx := bCtx.From(cmd.Context())

	states := tsUseCase.NewTrackerStateUseCase(tsRepo.NewTrackerStateMongoRepo(initMongo()), 10*time.Second)
	res, err := states.FindAll(ctx, chainId(cmd))
	if err != nil {
		return err
	}
	for _, s := range res {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tblock=%d\tlogIndex=%d\n", s.ContractAddress, s.Tag, s.LastBlockProcessed, s.LastLogIndexProcessed)
	}
	return nil
}
