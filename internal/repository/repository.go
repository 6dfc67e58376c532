package repository

import (
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by every repository when the requested row does
// not exist. Handlers translate it into a 404.
var ErrNotFound = errors.New("record not found")

// List-typed columns are stored as JSONB. These helpers keep the
// marshalling in one place and guarantee "[]"/"{}" instead of SQL NULL.

func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func unmarshalList[T any](raw []byte) ([]T, error) {
	out := []T{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func marshalMap(m map[string]string) ([]byte, error) {
	if m == nil {
		m = map[string]string{}
	}
	return json.Marshal(m)
}

func unmarshalMap(raw []byte) (map[string]string, error) {
	out := map[string]string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
