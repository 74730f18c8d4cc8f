package events

import (
	"encoding/json"
	"time"

	"moneyflow/internal/core"
)

type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// ChangeEvent announces a committed write. It carries only the key; consumers
// read the current record from the API if they need it.
type ChangeEvent struct {
	Kind      core.Kind `json:"kind"`
	Op        Op        `json:"op"`
	Key       int64     `json:"key"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChangeEvent(kind core.Kind, op Op, key int64) ChangeEvent {
	return ChangeEvent{Kind: kind, Op: op, Key: key, Timestamp: time.Now().UTC()}
}

func (e ChangeEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func ChangeEventFromJSON(data []byte) (ChangeEvent, error) {
	var e ChangeEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return ChangeEvent{}, err
	}
	return e, nil
}
