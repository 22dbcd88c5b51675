// internal/config/config.go
package config

type Config struct {
	Netmon NetmonConfig `yaml:"netmon"`
}

type NetmonConfig struct {
	Coin         CoinConfig          `yaml:"coin"`
	Daemon       DaemonConfig        `yaml:"daemon"`
	Refresh      RefreshConfig       `yaml:"refresh"`
	Log          LogConfig           `yaml:"log"`
	Metrics      MetricsConfig       `yaml:"metrics"`
	StatusExport *StatusExportConfig `yaml:"status_export"` // optional, opt-in
}

// ---- COIN ----

type CoinConfig struct {
	Name      string `yaml:"name"`
	Symbol    string `yaml:"symbol"`
	Algorithm string `yaml:"algorithm"`

	// Multiplier overrides the algorithm table; 0 => table value.
	Multiplier float64 `yaml:"multiplier"`
}

// ---- DAEMON ----

type DaemonConfig struct {
	URL       string `yaml:"url"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- REFRESH ----

type RefreshConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- LOG ----

type LogConfig struct {
	Level       string `yaml:"level"` // debug | info | warn | error
	Development bool   `yaml:"development"`
}

// ---- METRICS ----

type MetricsConfig struct {
	Listen string `yaml:"listen"` // empty => disabled
}

// ---- STATUS EXPORT ----

type StatusExportConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	BaseSlot  uint16 `yaml:"base_slot"`
	TimeoutMs int    `yaml:"timeout_ms"`
}
