package checkpoint

import "github.com/vmihailenco/msgpack/v5"

// Codec encodes checkpoint payloads for storage. The default is
// MessagePack; callers with other needs can plug in their own.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var DefaultCodec Codec = msgpackCodec{}

type msgpackCodec struct{}

func (msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
