package config

import "github.com/preston-bernstein/nba-highlights-service/internal/metrics"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `koanf:"metrics_enabled"`
	Port         string `koanf:"metrics_port"`
	OtlpEndpoint string `koanf:"otlp_endpoint"`
	ServiceName  string `koanf:"otel_service_name"`
	OtlpInsecure bool   `koanf:"otlp_insecure"`
}

// Telemetry converts the loaded settings into the exporter configuration.
func (m MetricsConfig) Telemetry() metrics.TelemetryConfig {
	return metrics.TelemetryConfig{
		Enabled:      m.Enabled,
		Port:         m.Port,
		ServiceName:  m.ServiceName,
		OtlpEndpoint: m.OtlpEndpoint,
		OtlpInsecure: m.OtlpInsecure,
	}
}
