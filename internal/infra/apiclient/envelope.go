package apiclient

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// envelope is a decoded response body. The API wraps payloads
// inconsistently: lists arrive as {"products": [...]}, {"data": {"products":
// [...]}}, {"data": [...]} or a bare array, so lookups try the named key at
// the top level, then inside data, then data itself.
type envelope struct {
	raw    json.RawMessage
	fields map[string]json.RawMessage
}

func parseEnvelope(raw []byte) envelope {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		return envelope{}
	}

	env := envelope{raw: raw}
	if raw[0] == '{' {
		// cannot fail on a valid object
		_ = json.Unmarshal(raw, &env.fields)
	}

	return env
}

// empty reports a body that was missing or not JSON.
func (e envelope) empty() bool {
	return e.raw == nil
}

// failed reports an explicit "success": false.
func (e envelope) failed() bool {
	raw, ok := e.fields["success"]
	if !ok {
		return false
	}

	var success bool
	if err := json.Unmarshal(raw, &success); err != nil {
		return false
	}

	return !success
}

// message returns the top-level "message" (or "error") string.
func (e envelope) message() string {
	for _, key := range []string{"message", "error"} {
		raw, ok := e.fields[key]
		if !ok {
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
			return msg
		}
	}

	return ""
}

// lookup finds the payload for one of keys, falling back to data. A bare
// array body is its own payload, as is a bare resource object.
func (e envelope) lookup(keys ...string) (json.RawMessage, bool) {
	if e.raw != nil && e.raw[0] == '[' {
		return e.raw, true
	}

	for _, key := range keys {
		if raw, ok := e.fields[key]; ok && !isNull(raw) {
			return raw, true
		}
	}

	data, ok := e.fields["data"]
	if !ok || isNull(data) {
		if _, hasID := e.fields["_id"]; hasID {
			return e.raw, true
		}

		return nil, false
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &nested); err == nil {
			for _, key := range keys {
				if raw, ok := nested[key]; ok && !isNull(raw) {
					return raw, true
				}
			}
		}
	}

	return data, true
}

// decodeOne unmarshals the payload found by lookup. It returns nil without
// error when the body carries no payload, as mutation responses often
// answer with only success and message.
func decodeOne[T any](e envelope, keys ...string) (*T, error) {
	raw, ok := e.lookup(keys...)
	if !ok {
		return nil, nil
	}

	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrapf(err, "decode %v payload", keys)
	}

	return out, nil
}

// decodeList is decodeOne for list payloads; a missing payload is an empty list.
func decodeList[T any](e envelope, keys ...string) ([]T, error) {
	raw, ok := e.lookup(keys...)
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrapf(err, "decode %v list", keys)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
