package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// Init installs the global jaeger tracer. The returned closer flushes
// buffered spans and must be closed before the process exits.
func Init(serviceName string) (io.Closer, error) {
	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "jaeger config")
	}
	cfg.ServiceName = serviceName
	if cfg.Sampler == nil || cfg.Sampler.Type == "" {
		cfg.Sampler = &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		}
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "init tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
