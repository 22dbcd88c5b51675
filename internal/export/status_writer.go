// internal/export/status_writer.go
package export

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/tamzrod/coin-netmon/internal/status"
)

// StatusWriter is the delivery-only contract for network status.
// It receives a snapshot and writes it verbatim.
// No logic, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// registerClient is the exact contract the status writer uses.
type registerClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

// BlockWriter writes one coin's status block into holding registers.
type BlockWriter struct {
	cli      registerClient
	unitID   uint8
	baseSlot uint16
	symbol   string

	needFull bool
	last     []uint16
}

// NewBlockWriter builds a status writer for the block at baseSlot.
func NewBlockWriter(cli registerClient, unitID uint8, baseSlot uint16, symbol string) *BlockWriter {
	return &BlockWriter{
		cli:      cli,
		unitID:   unitID,
		baseSlot: baseSlot,
		symbol:   symbol,
		needFull: true, // full re-assert on first successful write
		last:     status.Encode(status.Snapshot{}),
	}
}

// WriteStatus delivers a status snapshot into status memory.
// The first write and the first write after any failure re-assert the full
// block including the symbol; otherwise only changed live slots are written,
// contiguous changes as one request.
func (w *BlockWriter) WriteStatus(s status.Snapshot) error {
	if w == nil || w.cli == nil {
		return errors.New("status writer: no client")
	}

	base := w.baseAddr()

	if w.needFull {
		if err := w.cli.WriteRegisters(w.unitID, base, status.EncodeBlock(s, w.symbol)); err != nil {
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}
		w.needFull = false
		w.last = status.Encode(s)
		return nil
	}

	next := status.Encode(s)

	var errs error
	for start := 0; start <= status.SlotSecondsInError; {
		if next[start] == w.last[start] {
			start++
			continue
		}

		end := start
		for end+1 <= status.SlotSecondsInError && next[end+1] != w.last[end+1] {
			end++
		}

		if err := w.cli.WriteRegisters(w.unitID, base+uint16(start), next[start:end+1]); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("slots %d-%d: %w", start, end, err))
		} else {
			copy(w.last[start:end+1], next[start:end+1])
		}
		start = end + 1
	}

	if errs != nil {
		// Any partial failure introduces doubt; re-assert on next success.
		w.needFull = true
		return fmt.Errorf("status writer: %w", errs)
	}

	return nil
}

func (w *BlockWriter) baseAddr() uint16 {
	// Each coin owns a fixed SlotsPerBlock block.
	return w.baseSlot * status.SlotsPerBlock
}
