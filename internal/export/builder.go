// internal/export/builder.go
package export

import (
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	cfg "github.com/tamzrod/coin-netmon/internal/config"
	emodbus "github.com/tamzrod/coin-netmon/internal/export/modbus"
)

// Build dials the status endpoint and wires a Publisher for one coin.
// Connection failure at startup is returned; later failures are logged.
func Build(c cfg.StatusExportConfig, symbol string, clk clock.Clock, log *zap.Logger) (*Publisher, func() error, error) {
	cli, err := emodbus.Dial(emodbus.Config{
		Endpoint: c.Endpoint,
		Timeout:  time.Duration(c.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	w := NewBlockWriter(cli, c.UnitID, c.BaseSlot, symbol)
	return NewPublisher(w, clk, log), cli.Close, nil
}
