package session

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Codec names accepted by CodecByName.
const (
	CodecGob  = "gob"
	CodecJSON = "json"
	CodecBSON = "bson"
)

// Codec converts a session value map to the bytes stored by a backend and back.
type Codec interface {
	Name() string
	Encode(values map[string]any) ([]byte, error)
	Decode(data []byte) (map[string]any, error)
}

// CodecByName returns the codec for name. An empty name selects gob.
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", CodecGob:
		return GobCodec{}, nil
	case CodecJSON:
		return JSONCodec{}, nil
	case CodecBSON:
		return BSONCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCodec, name)
	}
}

func init() {
	// concrete types that commonly sit behind `any` in session values
	gob.Register(time.Time{})
	gob.Register(map[string]any{})
	gob.Register([]any{})
}

// GobCodec keeps Go types intact across a round trip. Custom types stored in a
// session must be registered with gob.Register.
type GobCodec struct{}

func (GobCodec) Name() string { return CodecGob }

func (GobCodec) Encode(values map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(values); err != nil {
		return nil, errors.Join(ErrEncodeFailed, err)
	}
	return buf.Bytes(), nil
}

func (GobCodec) Decode(data []byte) (map[string]any, error) {
	var values map[string]any
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&values); err != nil {
		return nil, errors.Join(ErrDecodeFailed, err)
	}
	return ensureMap(values), nil
}

// JSONCodec produces human-readable files. Numbers come back as json.Number
// and times as RFC 3339 strings; the typed getters on Session accept both.
type JSONCodec struct{}

func (JSONCodec) Name() string { return CodecJSON }

func (JSONCodec) Encode(values map[string]any) ([]byte, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return nil, errors.Join(ErrEncodeFailed, err)
	}
	return data, nil
}

func (JSONCodec) Decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, errors.Join(ErrDecodeFailed, err)
	}
	return ensureMap(values), nil
}

// BSONCodec stores sessions as BSON documents. Integers come back as int32 or
// int64, times as bson.DateTime and nested maps as bson.D.
type BSONCodec struct{}

func (BSONCodec) Name() string { return CodecBSON }

func (BSONCodec) Encode(values map[string]any) ([]byte, error) {
	data, err := bson.Marshal(ensureMap(values))
	if err != nil {
		return nil, errors.Join(ErrEncodeFailed, err)
	}
	return data, nil
}

func (BSONCodec) Decode(data []byte) (map[string]any, error) {
	var values map[string]any
	if err := bson.Unmarshal(data, &values); err != nil {
		return nil, errors.Join(ErrDecodeFailed, err)
	}
	return ensureMap(values), nil
}

func ensureMap(values map[string]any) map[string]any {
	if values == nil {
		return make(map[string]any)
	}
	return values
}
