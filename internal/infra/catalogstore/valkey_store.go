package catalogstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spfmatch/spfmatch/internal/domain/catalog"
)

// ValkeyStore shares the ingested product table across instances through a
// Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "catalog"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// GetTable implements catalog.Store.
func (s *ValkeyStore) GetTable(ctx context.Context) (catalog.Table, bool, error) {
	cmd := s.client.B().Get().Key(s.tableKey()).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var table catalog.Table
	if err := json.Unmarshal([]byte(payload), &table); err != nil {
		return nil, false, err
	}
	return table, true, nil
}

// SaveTable caches the table with optional TTL.
func (s *ValkeyStore) SaveTable(ctx context.Context, table catalog.Table, ttl time.Duration) error {
	payload, err := json.Marshal(table)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.tableKey()).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) tableKey() string {
	return fmt.Sprintf("%s:table", s.prefix)
}

var _ catalog.Store = (*ValkeyStore)(nil)
