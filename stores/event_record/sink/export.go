package sink

import (
	"reflect"
	"sort"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/base/log"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
)

const DefaultExportPageSize = 500

// Export copies every record of kinds into s in chain order, one kind at a time.
// Pages are keyed on the last (blockNumber, logIndex) seen so concurrent inserts do not shift them.
func Export(c ctx.Ctx, records record.UseCase, kinds record.Kinds, s record.Sink, pageSize int32, opts ...record.FindOptions) (int, error) {
	if pageSize <= 0 {
		pageSize = DefaultExportPageSize
	}
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		kind := kinds[name]
		n, err := exportKind(c, records, kind, s, pageSize, opts)
		total += n
		if err != nil {
			c.WithFields(log.Fields{
				"err":   err,
				"event": name,
			}).Error("exportKind failed")
			return total, err
		}
		c.WithFields(log.Fields{
			"event": name,
			"count": n,
		}).Info("exported")
	}
	return total, nil
}

func exportKind(c ctx.Ctx, records record.UseCase, kind record.Kind, s record.Sink, pageSize int32, opts []record.FindOptions) (int, error) {
	var after *record.Meta
	total := 0
	for {
		pageOpts := append([]record.FindOptions{
			record.WithSort("blockNumber", domain.SortDirAsc),
			record.WithPagination(0, pageSize),
		}, opts...)
		if after != nil {
			pageOpts = append(pageOpts, record.WithAfter(after))
		}

		out := kind.NewSlice()
		if err := records.FindAll(c, kind.Table, out, pageOpts...); err != nil {
			return total, err
		}
		page := toRecords(out)
		if len(page) == 0 {
			return total, nil
		}
		if err := s.Put(c, page); err != nil {
			return total, err
		}
		total += len(page)
		if len(page) < int(pageSize) {
			return total, nil
		}
		last := *page[len(page)-1].GetMeta()
		after = &last
	}
}

// toRecords turns a pointer to a slice of record structs into records
func toRecords(out interface{}) []record.Record {
	v := reflect.ValueOf(out).Elem()
	res := make([]record.Record, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if r, ok := v.Index(i).Addr().Interface().(record.Record); ok {
			res = append(res, r)
		}
	}
	return res
}
