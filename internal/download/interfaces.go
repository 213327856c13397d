package download

import (
	"context"

	"github.com/mediasaver/media-saver/internal/model"
)

// Requester defines the interface for the backend download client.
type Requester interface {
	// RequestDownload asks the backend to fetch and transcode the media at
	// url into the given kind. The response is returned verbatim, including
	// bodies whose status field is "error".
	RequestDownload(ctx context.Context, url string, kind model.Kind) (*model.DownloadResponse, error)

	// Health reports whether the backend answers its health endpoint.
	Health(ctx context.Context) error
}
