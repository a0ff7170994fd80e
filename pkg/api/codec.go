// Package api defines the request and response messages of the tripmate
// Connect services.
//
// Messages are plain Go structs carried as JSON. Pass CodecOptions to every
// handler and client so both sides agree on the wire format.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

const codecNameJSON = "json"

// JSONCodec is a connect.Codec for the plain structs in this package.
type JSONCodec struct {
	name string
}

var _ connect.Codec = JSONCodec{}

// Name implements connect.Codec.
func (c JSONCodec) Name() string {
	if c.name == "" {
		return codecNameJSON
	}
	return c.name
}

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal implements connect.Codec.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		// An empty unary body is a valid empty message.
		return nil
	}
	return json.Unmarshal(data, msg)
}

// CodecOptions replaces the protobuf codecs with JSONCodec, including the
// charset-qualified content type some browsers send.
func CodecOptions() []connect.Option {
	return []connect.Option{
		connect.WithCodec(JSONCodec{}),
		connect.WithCodec(JSONCodec{name: codecNameJSON + "; charset=utf-8"}),
	}
}
