// Package recordtest provides an in-memory record.UseCase for tests of the query usecases.
package recordtest

import (
	"encoding/json"
	"reflect"
	"sort"
	"sync"

	"github.com/andy-marketplace/goapi/base/ctx"
	"github.com/andy-marketplace/goapi/domain"
	"github.com/andy-marketplace/goapi/domain/record"
)

var participantFields = []string{"seller", "buyer", "bidder", "winner", "creator", "from", "to", "owner"}

// Store keeps records per table and applies find options the way the mongo repo does
type Store struct {
	mu     sync.Mutex
	tables map[domain.Table][]record.Record
}

func New(records ...record.Record) *Store {
	s := &Store{tables: map[domain.Table][]record.Record{}}
	for _, r := range records {
		s.Store(ctx.Background(), r)
	}
	return s
}

func (s *Store) Store(c ctx.Ctx, r record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.tables[r.Table()] {
		if existing.GetMeta().Id == r.GetMeta().Id {
			return nil
		}
	}
	s.tables[r.Table()] = append(s.tables[r.Table()], r)
	return nil
}

func fields(r record.Record) map[string]interface{} {
	raw, _ := json.Marshal(r)
	m := map[string]interface{}{}
	json.Unmarshal(raw, &m)
	return m
}

func eq(m map[string]interface{}, key string, want string) bool {
	v, ok := m[key].(string)
	return ok && v == want
}

func (s *Store) match(table domain.Table, optFns ...record.FindOptions) ([]record.Record, int, int, error) {
	opts, err := record.GetFindOptions(optFns...)
	if err != nil {
		return nil, 0, 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res := []record.Record{}
	for _, r := range s.tables[table] {
		m := fields(r)
		meta := r.GetMeta()
		switch {
		case opts.ChainId != nil && meta.ChainId != *opts.ChainId:
			continue
		case opts.Contract != nil && meta.Contract != *opts.Contract:
			continue
		case opts.NftAddress != nil && !eq(m, "nftAddress", string(*opts.NftAddress)):
			continue
		case opts.TokenId != nil && !eq(m, "tokenId", string(*opts.TokenId)):
			continue
		case opts.Category != nil && !eq(m, "category", *opts.Category):
			continue
		case opts.Seller != nil && !eq(m, "seller", string(*opts.Seller)):
			continue
		case opts.Bidder != nil && !eq(m, "bidder", string(*opts.Bidder)):
			continue
		case opts.To != nil && !eq(m, "to", string(*opts.To)):
			continue
		case opts.FromBlock != nil && meta.BlockNumber < *opts.FromBlock:
			continue
		case opts.After != nil && !opts.After.Before(meta):
			continue
		}
		if opts.Account != nil {
			found := false
			for _, f := range participantFields {
				if eq(m, f, string(*opts.Account)) {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		res = append(res, r)
	}

	asc := opts.SortDir != nil && *opts.SortDir == domain.SortDirAsc
	sort.SliceStable(res, func(i, j int) bool {
		a, b := res[i].GetMeta(), res[j].GetMeta()
		if opts.SortBy != nil && *opts.SortBy == "blockTimestamp" && a.BlockTimestamp != b.BlockTimestamp {
			return (a.BlockTimestamp < b.BlockTimestamp) == asc
		}
		return a.Before(b) == asc
	})

	offset, limit := 0, 100
	if opts.Skip != nil {
		offset = int(*opts.Skip)
	}
	if opts.First != nil {
		limit = int(*opts.First)
	}
	if limit > 1000 {
		limit = 1000
	}
	return res, offset, limit, nil
}

func (s *Store) FindAll(c ctx.Ctx, table domain.Table, out interface{}, opts ...record.FindOptions) error {
	res, offset, limit, err := s.match(table, opts...)
	if err != nil {
		return err
	}
	slice := reflect.ValueOf(out).Elem()
	slice.Set(reflect.MakeSlice(slice.Type(), 0, 0))
	for i := offset; i < len(res) && i < offset+limit; i++ {
		slice.Set(reflect.Append(slice, reflect.ValueOf(res[i]).Elem()))
	}
	return nil
}

func (s *Store) FindOne(c ctx.Ctx, table domain.Table, out interface{}, opts ...record.FindOptions) error {
	res, offset, _, err := s.match(table, opts...)
	if err != nil {
		return err
	}
	if offset >= len(res) {
		return domain.ErrNotFound
	}
	reflect.ValueOf(out).Elem().Set(reflect.ValueOf(res[offset]).Elem())
	return nil
}

func (s *Store) Count(c ctx.Ctx, table domain.Table, opts ...record.FindOptions) (int, error) {
	res, _, _, err := s.match(table, opts...)
	return len(res), err
}
