// Package query wraps the mongo driver for the repositories.
// Every call checks the query plan when index checking is on and logs slow operations.
package query

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrCollScan is returned for unindexed queries when index checking is on
	ErrCollScan = errors.New("COLLSCAN is not allowed")
)

// Mongo abstracts the mongo layer
type Mongo interface {
	// Insert inserts a new document, ErrDuplicateKey when a unique index is violated
	Insert(c ctx.Ctx, table domain.Table, doc interface{}) error

	// FindOne decodes the first match into result, ErrNotFound when nothing matches
	FindOne(c ctx.Ctx, table domain.Table, query, result interface{}) error

	Count(c ctx.Ctx, table domain.Table, selector interface{}) (int, error)

	// Upsert replaces the document matching selector, inserting it when absent
	Upsert(c ctx.Ctx, table domain.Table, selector, doc interface{}) error

	// Search sorts by `sort` ("timestamp" ascending, "-timestamp" descending). A limit of 0 means no limit.
	Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// SearchNSorts sorts by several fields in order, keep them in the order of the compound index
	SearchNSorts(c ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error

	// Patch $sets update on the document matching selector, ErrNotFound when nothing matches
	Patch(c ctx.Ctx, table domain.Table, selector, update interface{}) error

	// CustomPatch runs a raw update document. Without upsert it returns ErrNotFound when nothing matches.
	CustomPatch(c ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error

	RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error
}
