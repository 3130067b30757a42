package wiring

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	aucache "github.com/Roshick/go-autumn-synchronisation/pkg/cache"
	"github.com/Roshick/go-autumn-slog/pkg/logging"
	"github.com/Roshick/go-autumn-vault"
	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/urfave/cli/v3"

	"github.com/runforge/runkit/internal/client"
	"github.com/runforge/runkit/internal/config"
	"github.com/runforge/runkit/internal/repository/httpremote"
	"github.com/runforge/runkit/internal/service/dataset"
	"github.com/runforge/runkit/pkg/filesystem"
	"github.com/runforge/runkit/pkg/paths"
)

type ClientFactory interface {
	NewHTTPClient(clientName string, opts *client.HTTPClientOptions) (*http.Client, error)
}

type ArchiveRemote interface {
	dataset.ArchiveRemote
}

type Application struct {
	// bootstrap
	Logger         *slog.Logger
	ClientFactory  ClientFactory
	ApplicationCfg *config.ApplicationConfig

	// repositories (outgoing connectors)
	ArchiveRemote ArchiveRemote

	// services (business logic)
	ArchiveCache *dataset.ArchiveCache

	logFile *os.File
}

func NewApplication() *Application {
	return &Application{}
}

func (a *Application) Create(ctx context.Context) error {
	// bootstrap
	a.createClientFactory(ctx)
	if err := a.createLogging(ctx); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	if err := a.fetchVaultSecrets(ctx); err != nil {
		return fmt.Errorf("failed to set up vault: %w", err)
	}
	if err := a.loadApplicationConfig(ctx); err != nil {
		return fmt.Errorf("failed to load application config: %w", err)
	}

	// repositories (outgoing connectors)
	if err := a.createArchiveRemote(ctx); err != nil {
		return fmt.Errorf("failed to set up archive remote: %w", err)
	}

	// services (business logic)
	if err := a.createArchiveCache(ctx); err != nil {
		return fmt.Errorf("failed to set up archive cache: %w", err)
	}
	return nil
}

func (a *Application) Teardown(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			aulogging.Logger.Ctx(ctx).Warn().WithErr(err).Printf("failed to close log file")
		}
	}
}

func (a *Application) Run(args []string) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		a.Teardown(ctx, cancel)
	}()

	if err := a.Create(ctx); err != nil {
		aulogging.Logger.Ctx(ctx).Error().WithErr(err).Printf("failed to create application")
		return config.ExitCodeCreateFailed
	}

	if err := a.rootCommand().Run(ctx, args); err != nil {
		aulogging.Logger.Ctx(ctx).Error().WithErr(err).Printf("failed to run application")
		return config.ExitCodeRunFailed
	}

	return config.ExitCodeSuccess
}

func (a *Application) rootCommand() *cli.Command {
	flagValues := struct {
		target string
		md5    string
	}{}

	return &cli.Command{
		Name:  a.ApplicationCfg.ApplicationName,
		Usage: "toolkit for experiment runs",
		Commands: []*cli.Command{
			{
				Name:      "fetch",
				Usage:     "download dataset archives and extract them into the dataset directory",
				ArgsUsage: "URL...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "target",
						Aliases:     []string{"t"},
						Usage:       "directory the archives are extracted into",
						Destination: &flagValues.target,
					},
					&cli.StringFlag{
						Name:        "md5",
						Usage:       "hex md5 digest the downloaded archive must match",
						Destination: &flagValues.md5,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("no archive URLs given")
					}

					targetDir := flagValues.target
					if targetDir == "" {
						targetDir = a.ApplicationCfg.DatasetDirectory
					}
					fullTarget, err := paths.Ensure(targetDir)
					if err != nil {
						return err
					}

					fileSystem := filesystem.NewOnDisk()
					for _, rawURL := range cmd.Args().Slice() {
						if err = a.fetchArchive(ctx, fileSystem, fullTarget, rawURL, flagValues.md5); err != nil {
							return err
						}
					}
					return nil
				},
			},
		},
	}
}

// fetchArchive resolves rawURL (possibly a bare archive name relative to
// the configured mirrors) and extracts it below targetDir.
func (a *Application) fetchArchive(
	ctx context.Context, fileSystem *filesystem.FileSystem, targetDir string, rawURL string, md5Digest string,
) error {
	targetPath := fileSystem.Join(targetDir, archiveBaseName(rawURL))

	parsedURL, err := url.Parse(rawURL)
	if err == nil && parsedURL.Scheme != "" {
		return a.ArchiveCache.RetrieveArchiveToFileSystem(ctx, rawURL, md5Digest, fileSystem, targetPath)
	}

	if len(a.ApplicationCfg.DatasetMirrors) == 0 {
		return fmt.Errorf("'%s' is not an absolute URL and no dataset mirrors are configured", rawURL)
	}
	for _, mirror := range a.ApplicationCfg.DatasetMirrors {
		mirrorURL := strings.TrimSuffix(mirror, "/") + "/" + strings.TrimPrefix(rawURL, "/")
		err = a.ArchiveCache.RetrieveArchiveToFileSystem(ctx, mirrorURL, md5Digest, fileSystem, targetPath)
		if err == nil {
			return nil
		}
		aulogging.Logger.Ctx(ctx).Warn().WithErr(err).Printf("failed to fetch '%s' from mirror '%s'", rawURL, mirror)
	}
	return fmt.Errorf("failed to fetch '%s' from all configured mirrors: %w", rawURL, err)
}

func archiveBaseName(rawURL string) string {
	name := rawURL
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	for _, suffix := range []string{".tgz", ".gz", ".tar"} {
		name = strings.TrimSuffix(name, suffix)
	}
	return name
}

func (a *Application) createLogging(_ context.Context) error {
	if a.Logger == nil {
		loggingCfg := config.NewLoggingConfig()
		if err := loggingCfg.ObtainValuesFromEnv(); err != nil {
			return fmt.Errorf("failed to obtain logging config values from environment: %w", err)
		}

		var writer io.Writer = os.Stderr
		if loggingCfg.LogFilePath != "" {
			fullPath, err := paths.Full(loggingCfg.LogFilePath)
			if err != nil {
				return fmt.Errorf("failed to resolve log file path: %w", err)
			}
			logFile, err := os.OpenFile(fullPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			a.logFile = logFile
			writer = io.MultiWriter(os.Stderr, logFile)
		}

		if loggingCfg.LogStyle == config.LogStyleJSON {
			a.Logger = slog.New(slog.NewJSONHandler(writer, loggingCfg.HandlerOptions()))
		} else {
			a.Logger = slog.New(slog.NewTextHandler(writer, loggingCfg.HandlerOptions()))
		}
	}

	slog.SetDefault(a.Logger)
	aulogging.Logger = logging.New()
	return nil
}

func (a *Application) fetchVaultSecrets(ctx context.Context) error {
	vaultCfg := vault.NewConfig()
	if err := vaultCfg.ObtainValuesFromEnv(); err != nil {
		return fmt.Errorf("failed to obtain vault config values from environment: %w", err)
	}
	if !vaultCfg.Disabled {
		vaultClient, err := a.ClientFactory.NewHTTPClient("vault", nil)
		if err != nil {
			return fmt.Errorf("failed to create vault http client: %w", err)
		}
		vaultInstance, err := vault.New(vaultCfg, vaultClient)
		if err != nil {
			return fmt.Errorf("failed to instantiate vault: %w", err)
		}
		return vaultInstance.FetchSecretsToEnv(ctx)
	}
	return nil
}

func (a *Application) loadApplicationConfig(_ context.Context) error {
	a.ApplicationCfg = config.NewApplicationConfig()
	if err := a.ApplicationCfg.ObtainValuesFromEnv(); err != nil {
		return fmt.Errorf("failed to obtain application config values from environment: %w", err)
	}

	slog.SetDefault(slog.Default().With("application", a.ApplicationCfg.ApplicationName))

	return nil
}

func (a *Application) createClientFactory(_ context.Context) {
	if a.ClientFactory == nil {
		a.ClientFactory = client.NewFactory()
	}
}

func (a *Application) createArchiveRemote(_ context.Context) error {
	if a.ArchiveRemote == nil {
		opts := client.DefaultHTTPClientOptions()
		opts.Timeout = a.ApplicationCfg.DownloadTimeout
		if a.ApplicationCfg.DownloadUsername != "" {
			opts.BasicAuthOptions = &client.BasicAuthOptions{
				Username: a.ApplicationCfg.DownloadUsername,
				Password: a.ApplicationCfg.DownloadPassword,
			}
		}
		httpClient, err := a.ClientFactory.NewHTTPClient("dataset-download", opts)
		if err != nil {
			return err
		}
		a.ArchiveRemote = httpremote.New(httpClient)
	}
	return nil
}

func (a *Application) createArchiveCache(ctx context.Context) error {
	if a.ArchiveCache == nil {
		byteSliceCache, err := a.createByteSliceCache(ctx, "dataset-archive")
		if err != nil {
			return err
		}
		a.ArchiveCache = dataset.NewArchiveCache(a.ArchiveRemote, byteSliceCache, a.ApplicationCfg.DatasetArchiveTTL)
	}
	return nil
}

func (a *Application) createByteSliceCache(_ context.Context, cacheKey string) (aucache.Cache[[]byte], error) {
	switch a.ApplicationCfg.CacheMethod {
	case config.CacheMethodRedis:
		redisURL := a.ApplicationCfg.CacheRedisURL
		redisPassword := a.ApplicationCfg.CacheRedisPassword
		return aucache.NewRedisCache[[]byte](redisURL, redisPassword, cacheKey)
	default:
		return aucache.NewMemoryCache[[]byte](), nil
	}
}
