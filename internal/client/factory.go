package client

import (
	"net/http"
	"time"

	"github.com/PuerkitoBio/rehttp"
	"github.com/Roshick/go-autumn-web/auth"
	"github.com/Roshick/go-autumn-web/logging"
	"github.com/Roshick/go-autumn-web/metrics"
	"github.com/Roshick/go-autumn-web/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Factory struct {
}

func NewFactory() *Factory {
	return &Factory{}
}

type BasicAuthOptions struct {
	Username string
	Password string
}

type HTTPClientOptions struct {
	*BasicAuthOptions
	Timeout time.Duration
}

//nolint:mnd // magic numbers are used for client configuration
func DefaultHTTPClientOptions() *HTTPClientOptions {
	return &HTTPClientOptions{
		Timeout: 30 * time.Second,
	}
}

//nolint:mnd // magic numbers are used for client configuration
func (f *Factory) NewHTTPClient(clientName string, opts *HTTPClientOptions) (*http.Client, error) {
	if opts == nil {
		opts = DefaultHTTPClientOptions()
	}

	// RoundTrippers are called bottom to top
	rt := http.DefaultTransport
	// inject basic auth transport
	if opts.BasicAuthOptions != nil {
		rt = auth.NewBasicAuthTransport(rt, opts.Username, opts.Password, nil)
	}
	// record metrics for every retry
	rt = metrics.NewRequestMetricsTransport(rt, clientName, nil)
	// log every retry
	rt = logging.NewRequestLoggerTransport(rt, nil)
	// retry
	retryFn := rehttp.RetryAll(rehttp.RetryStatusInterval(500, 600), rehttp.RetryMaxRetries(3))
	delayFn := rehttp.ExpJitterDelay(1*time.Second, 10*time.Second)
	rt = rehttp.NewTransport(rt, retryFn, delayFn)
	// instrument tracing before retry
	rt = otelhttp.NewTransport(rt, otelhttp.WithServerName(clientName))
	rt = tracing.NewRequestIDHeaderTransport(rt, nil)

	return &http.Client{
		Transport: rt,
		Timeout:   opts.Timeout,
	}, nil
}
