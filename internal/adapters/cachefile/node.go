package cachefile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachet/internal/core/ports"
)

// CodecNodeID is the unique identifier for the cache codec Graft node.
const CodecNodeID graft.ID = "adapter.cache_codec"

func init() {
	// The store is bound to a build directory chosen at the command line, so
	// only the stateless codec lives in the graph.
	graft.Register(graft.Node[ports.Codec]{
		ID:        CodecNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Codec, error) {
			return NewCodec(), nil
		},
	})
}
