package cli

import (
	"errors"

	"github.com/shopfront/shopfront/internal/client/api"
	"github.com/shopfront/shopfront/internal/common"
)

// reportFailure renders err for the user. Server-reported messages are shown
// verbatim; transport and malformed-response failures collapse into the
// fixed generic message. Superseded catalog results are dropped silently.
func reportFailure(err error, generic string) {
	if errors.Is(err, common.ErrStaleResult) {
		return
	}
	if api.ErrKind(err, api.KindUnauthenticated) {
		printlnFn("Please login first")
		return
	}
	if msg := api.ServerMessage(err); msg != "" {
		printlnFn(msg)
		return
	}
	printlnFn(generic)
}
