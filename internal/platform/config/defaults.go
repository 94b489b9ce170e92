package config

const (
	defaultServerPort = 8080

	defaultBreakerMaxFailures = 5
	defaultBreakerHalfOpen    = 1

	defaultProgressPerTick = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",
		"server.request_timeout":  "8s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "tripcrew",

		"storage.driver":                  DriverMemory,
		"storage.path":                    "tripcrew.db",
		"storage.breaker.max_failures":    defaultBreakerMaxFailures,
		"storage.breaker.timeout":         "30s",
		"storage.breaker.half_open_limit": defaultBreakerHalfOpen,

		"replan.tick_interval":     "1s",
		"replan.progress_per_tick": defaultProgressPerTick,
	}
}
