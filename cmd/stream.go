package cmd

import (
	"fmt"
	"os"

	"github.com/payx/payledger"
)

// streamStats counts what happened while consuming a transaction stream.
type streamStats struct {
	Decoded   int   // structurally valid records read from the stream
	Discarded int   // records dropped by business validation
	Err       error // structural error that stopped consumption, if any
}

// consumeFile feeds every record of the named file into manager, stopping
// at the first structural error. That error lands in the stats rather than
// the return value: everything applied before it remains applied, and the
// caller still renders the partial state.
func consumeFile(path string, manager *payledger.AccountManager) (streamStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return streamStats{}, fmt.Errorf("cannot open input file: %w", err)
	}
	defer file.Close()

	var stats streamStats
	for t, err := range payledger.DecodeTransactions(file) {
		if err != nil {
			stats.Err = err
			break
		}
		stats.Decoded++
		if !t.Validate() {
			stats.Discarded++
			continue
		}
		manager.Process(t)
	}
	return stats, nil
}
