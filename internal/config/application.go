package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/runforge/runkit/internal/utils"
)

const (
	ExitCodeSuccess      = 0
	ExitCodeCreateFailed = 20
	ExitCodeRunFailed    = 30
)

type CacheMethod int64

const (
	CacheMethodUnknown CacheMethod = iota
	CacheMethodMemory
	CacheMethodRedis
)

// DatasetMirrors is an ordered list of base URLs tried in turn when a
// dataset archive is fetched.
type DatasetMirrors []string

type ApplicationConfig struct {
	ApplicationName string `env:"APPLICATION_NAME" envDefault:"runkit"`

	DatasetDirectory  string         `env:"DATASET_DIRECTORY"   envDefault:"~/datasets"`
	DatasetMirrors    DatasetMirrors `env:"DATASET_MIRRORS"`
	DatasetArchiveTTL time.Duration  `env:"DATASET_ARCHIVE_TTL" envDefault:"15m"`

	DownloadTimeout  time.Duration `env:"DOWNLOAD_TIMEOUT" envDefault:"5m"`
	DownloadUsername string        `env:"DOWNLOAD_USERNAME"`
	DownloadPassword string        `env:"DOWNLOAD_PASSWORD"`

	CacheMethod        CacheMethod `env:"CACHE_METHOD" envDefault:"MEMORY"`
	CacheRedisURL      string      `env:"CACHE_REDIS_URL"`
	CacheRedisPassword string      `env:"CACHE_REDIS_PASSWORD"`

	RunBaseSeed int64 `env:"RUN_BASE_SEED" envDefault:"42"`
}

func NewApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{}
}

func (c *ApplicationConfig) ObtainValuesFromEnv() error {
	return env.ParseWithOptions(c, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(CacheMethod(0)): func(v string) (any, error) {
				return parseCacheMethod(v)
			},
			reflect.TypeOf(DatasetMirrors{}): func(v string) (any, error) {
				return DatasetMirrors(utils.SplitUniqueNonEmpty(v, ",")), nil
			},
		},
	})
}

func parseCacheMethod(value string) (CacheMethod, error) {
	switch value {
	case "REDIS":
		return CacheMethodRedis, nil
	case "MEMORY":
		return CacheMethodMemory, nil
	default:
		return CacheMethodUnknown, fmt.Errorf("invalid cache method: '%s'", value)
	}
}
