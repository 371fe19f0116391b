// Package tracer sets up the opentracing tracer shared by the HTTP layer and the gorm plugin.
package tracer

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewJaegerTracer 创建 Jaeger Tracer
// An empty agentHostPort returns the no-op tracer.
func NewJaegerTracer(serviceName, agentHostPort string) (opentracing.Tracer, io.Closer, error) {
	if agentHostPort == "" {
		return opentracing.NoopTracer{}, nopCloser{}, nil
	}

	cfg := &jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           false,
			LocalAgentHostPort: agentHostPort,
		},
	}

	return cfg.NewTracer()
}

// Setup installs the tracer globally and returns its closer
// Setup 设置全局 Tracer
func Setup(serviceName, agentHostPort string) (io.Closer, error) {
	t, closer, err := NewJaegerTracer(serviceName, agentHostPort)
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(t)
	return closer, nil
}
