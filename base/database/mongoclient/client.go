// Package mongoclient connects the mongo driver with pool sizing per cpu.
package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/andy-marketplace/goapi/base/log"
)

const (
	socketTimeout  = 60 * time.Second
	connectTimeout = 20 * time.Second
)

// Client is a connected driver bound to one database
type Client struct {
	DbName string
	*mongo.Client
}

// Config describes one deployment
type Config struct {
	URI string
	// AuthDBName is used when the uri carries credentials without authSource
	AuthDBName string
	DBName     string
	SSL        bool
	// Majority makes writes wait for a majority of the replica set
	Majority bool
	// PoolMultiplier is the total pool size per cpu, split across hosts
	PoolMultiplier float64
}

// poolSize is the per host pool size
func (cfg Config) poolSize(hosts int) uint64 {
	if hosts < 1 {
		hosts = 1
	}
	total := int(float64(runtime.NumCPU()) * cfg.PoolMultiplier)
	if total < hosts {
		total = hosts
	}
	return uint64((total + hosts - 1) / hosts)
}

func (cfg Config) clientOptions() (*options.ClientOptions, connstring.ConnString, error) {
	cs, err := connstring.Parse(cfg.URI)
	if err != nil {
		return nil, cs, err
	}
	opts := options.Client().ApplyURI(cfg.URI).
		SetSocketTimeout(socketTimeout).
		SetConnectTimeout(connectTimeout).
		SetRetryWrites(true)

	if cs.Username != "" && cs.AuthSource == "" {
		opts.SetAuth(options.Credential{
			AuthMechanism:           cs.AuthMechanism,
			AuthMechanismProperties: cs.AuthMechanismProperties,
			Username:                cs.Username,
			Password:                cs.Password,
			PasswordSet:             cs.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	pool := cfg.poolSize(len(cs.Hosts))
	opts.SetMaxPoolSize(pool).SetMinPoolSize(pool / 4)

	if cfg.SSL {
		opts.SetTLSConfig(&tls.Config{})
	}
	if cfg.Majority {
		opts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}
	return opts, cs, nil
}

// ConnectMongoClient connects and checks that the database is reachable
func ConnectMongoClient(ctx context.Context, cfg Config) (*Client, error) {
	opts, cs, err := cfg.clientOptions()
	if err != nil {
		log.Log().WithFields(log.Fields{"dbName": cfg.DBName, "err": err}).Error("fail to parse connstring")
		return nil, err
	}
	l := log.Log().WithFields(log.Fields{"mongoHosts": cs.Hosts, "dbName": cfg.DBName})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		l.WithField("err", err).Error("mongo.Connect failed")
		return nil, err
	}
	// listing collections proves both the connection and the db permissions
	if _, err := client.Database(cfg.DBName).ListCollectionNames(ctx, bson.D{}); err != nil {
		l.WithField("err", err).Error("fail to test mongo db")
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	l.WithField("poolSize", *opts.MaxPoolSize).Info("mongo connected")
	return &Client{Client: client, DbName: cfg.DBName}, nil
}

// MustConnectMongoClient panics when ConnectMongoClient fails
func MustConnectMongoClient(cfg Config) *Client {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	cli, err := ConnectMongoClient(ctx, cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"dbName": cfg.DBName, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}
