package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Storage.validate(),
		c.Replan.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}
	if s.RequestTimeout > 0 && s.RequestTimeout >= s.WriteTimeout {
		errs = append(errs, fmt.Errorf("server.request_timeout (%s) must be shorter than server.write_timeout (%s)", s.RequestTimeout, s.WriteTimeout))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (st *StorageConfig) validate() error {
	var errs []error

	switch st.Driver {
	case DriverMemory:
	case DriverSQLite:
		if st.Path == "" {
			errs = append(errs, errors.New("storage.path must not be empty when driver is sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be one of: memory, sqlite; got %q", st.Driver))
	}
	if st.Breaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("storage.breaker.max_failures must be >= 1, got %d", st.Breaker.MaxFailures))
	}
	if st.Breaker.Timeout <= 0 {
		errs = append(errs, errors.New("storage.breaker.timeout must be positive"))
	}
	if st.Breaker.HalfOpenLimit < 1 {
		errs = append(errs, fmt.Errorf("storage.breaker.half_open_limit must be >= 1, got %d",
			st.Breaker.HalfOpenLimit))
	}

	return errors.Join(errs...)
}

func (r *ReplanConfig) validate() error {
	var errs []error

	if r.TickInterval <= 0 {
		errs = append(errs, errors.New("replan.tick_interval must be positive"))
	}
	if r.ProgressPerTick < 1 || r.ProgressPerTick > 100 {
		errs = append(errs, fmt.Errorf("replan.progress_per_tick must be between 1 and 100, got %d", r.ProgressPerTick))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
