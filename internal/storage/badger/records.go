package badger

import (
	"encoding/json"
	"fmt"
	"time"
)

// Stored records carry the entity as a JSON payload plus the index fields
// badgerhold queries need. Timestamps cross the storage boundary as epoch
// seconds and are rehydrated onto the entity on read; callers only ever
// see rehydrated records.

type projectRecord struct {
	ID           string `badgerhold:"key"`
	Data         []byte
	CreatedEpoch int64
	UpdatedEpoch int64
}

type screenRecord struct {
	ID           string `badgerhold:"key"`
	ProjectID    string `badgerhold:"index"`
	Data         []byte
	CreatedEpoch int64
	UpdatedEpoch int64
}

type componentRecord struct {
	ID           string `badgerhold:"key"`
	ScreenID     string `badgerhold:"index"`
	ProjectID    string `badgerhold:"index"`
	Data         []byte
	CreatedEpoch int64
	UpdatedEpoch int64
}

type dataModelRecord struct {
	ID           string `badgerhold:"key"`
	ProjectID    string `badgerhold:"index"`
	Data         []byte
	CreatedEpoch int64
	UpdatedEpoch int64
}

type designSystemRecord struct {
	ID           string `badgerhold:"key"`
	ProjectID    string `badgerhold:"index"`
	Version      int
	Data         []byte
	CreatedEpoch int64
	UpdatedEpoch int64
}

type journeyRecord struct {
	ID           string `badgerhold:"key"`
	ProjectID    string `badgerhold:"index"`
	Data         []byte
	CreatedEpoch int64
	UpdatedEpoch int64
}

// marshalEntity serializes an entity for storage
func marshalEntity(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize record: %w", err)
	}
	return data, nil
}

// unmarshalEntity rehydrates a stored payload into the target entity
func unmarshalEntity(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to deserialize record: %w", err)
	}
	return nil
}

// epochTime converts stored epoch seconds back to a time value
func epochTime(epoch int64) time.Time {
	if epoch == 0 {
		return time.Time{}
	}
	return time.Unix(epoch, 0).UTC()
}
