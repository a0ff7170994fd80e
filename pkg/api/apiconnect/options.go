// Package apiconnect wires the tripmate services to Connect: procedure
// names, handler constructors and typed clients.
package apiconnect

import (
	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/pkg/api"
)

func handlerCodecOptions() []connect.HandlerOption {
	var opts []connect.HandlerOption
	for _, o := range api.CodecOptions() {
		opts = append(opts, o)
	}
	return opts
}

func clientCodecOptions() []connect.ClientOption {
	// Clients send with the first codec registered, so only the plain name.
	return []connect.ClientOption{connect.WithCodec(api.JSONCodec{})}
}
