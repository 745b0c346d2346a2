package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process publishers already hand
// over the typed struct; anything else (maps from a JSON source) is re-encoded.
func DecodePayload[T any](payload interface{}) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	case nil:
		return out, fmt.Errorf(ErrMsgDecodePayload+": empty", out)
	}

	raw, ok := payload.(json.RawMessage)
	if !ok {
		b, err := json.Marshal(payload)
		if err != nil {
			return out, fmt.Errorf(ErrMsgDecodePayload+": %w", out, err)
		}
		raw = b
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf(ErrMsgDecodePayload+": %w", out, err)
	}
	return out, nil
}
