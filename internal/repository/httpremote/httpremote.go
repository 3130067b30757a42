package httpremote

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// ArchiveRemote fetches dataset archive bytes over HTTP(S) using the
// instrumented retrying client supplied by the wiring.
type ArchiveRemote struct {
	client *http.Client
}

func New(client *http.Client) *ArchiveRemote {
	return &ArchiveRemote{client: client}
}

func (r *ArchiveRemote) GetArchive(ctx context.Context, archiveURL url.URL) ([]byte, error) {
	if archiveURL.Scheme != "http" && archiveURL.Scheme != "https" {
		return nil, NewUnsupportedSchemeError(archiveURL.Scheme)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL.String(), nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return nil, NewArchiveRequestFailedError(archiveURL.String(), response.StatusCode)
	}

	return io.ReadAll(response.Body)
}
