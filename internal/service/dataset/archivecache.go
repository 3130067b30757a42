package dataset

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"github.com/Roshick/go-autumn-synchronisation/pkg/cache"
	aulogging "github.com/StephanHCB/go-autumn-logging"

	"github.com/runforge/runkit/pkg/filesystem"
	"github.com/runforge/runkit/pkg/targz"
)

// ArchiveRemote fetches raw archive bytes for a dataset URL.
type ArchiveRemote interface {
	GetArchive(context.Context, url.URL) ([]byte, error)
}

// ArchiveCache caches downloaded dataset archives keyed by URL and
// digest, verifying an optional MD5 digest before anything is handed to
// callers or extracted.
type ArchiveCache struct {
	remote ArchiveRemote
	cache  cache.Cache[[]byte]
	ttl    time.Duration
}

func NewArchiveCache(remote ArchiveRemote, cache cache.Cache[[]byte], ttl time.Duration) *ArchiveCache {
	return &ArchiveCache{
		remote: remote,
		cache:  cache,
		ttl:    ttl,
	}
}

// RetrieveArchive returns the archive bytes for archiveURL, from cache
// when possible. A non-empty md5Digest (hex) is verified against both
// cached and freshly downloaded bytes.
func (c *ArchiveCache) RetrieveArchive(ctx context.Context, archiveURL string, md5Digest string) ([]byte, error) {
	parsedURL, err := url.Parse(archiveURL)
	if err != nil {
		return nil, NewInvalidArchiveURLError(archiveURL)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, NewInvalidArchiveURLError(archiveURL)
	}

	cacheKey := fmt.Sprintf("%s|%s", parsedURL.String(), md5Digest)
	cached, err := c.cache.Get(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		if innerErr := verifyDigest(*cached, md5Digest); innerErr != nil {
			aulogging.Logger.Ctx(ctx).Warn().WithErr(innerErr).Printf("cached dataset archive with key '%s' is corrupt, refreshing", cacheKey)
		} else {
			aulogging.Logger.Ctx(ctx).Info().Printf("cache hit for dataset archive with key '%s'", cacheKey)
			return *cached, nil
		}
	} else {
		aulogging.Logger.Ctx(ctx).Info().Printf("cache miss for dataset archive with key '%s', retrieving from remote", cacheKey)
	}

	archiveBytes, err := c.remote.GetArchive(ctx, *parsedURL)
	if err != nil {
		return nil, err
	}
	if err = verifyDigest(archiveBytes, md5Digest); err != nil {
		return nil, err
	}

	if err = c.cache.Set(ctx, cacheKey, archiveBytes, c.ttl); err != nil {
		aulogging.Logger.Ctx(ctx).Warn().WithErr(err).Printf("failed to cache dataset archive with key '%s'", cacheKey)
	} else {
		aulogging.Logger.Ctx(ctx).Info().Printf("successfully cached dataset archive with key '%s'", cacheKey)
	}
	return archiveBytes, nil
}

// RetrieveArchiveToFileSystem downloads (or reuses) the archive and
// extracts it into targetPath on the given filesystem.
func (c *ArchiveCache) RetrieveArchiveToFileSystem(
	ctx context.Context, archiveURL string, md5Digest string, fileSystem *filesystem.FileSystem, targetPath string,
) error {
	archiveBytes, err := c.RetrieveArchive(ctx, archiveURL, md5Digest)
	if err != nil {
		return err
	}
	return targz.Extract(ctx, fileSystem, bytes.NewBuffer(archiveBytes), targetPath)
}

func verifyDigest(archiveBytes []byte, md5Digest string) error {
	if md5Digest == "" {
		return nil
	}
	sum := md5.Sum(archiveBytes)
	actualDigest := hex.EncodeToString(sum[:])
	if actualDigest != md5Digest {
		return NewDigestMismatchError(md5Digest, actualDigest)
	}
	return nil
}
