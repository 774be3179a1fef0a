package fixture

import (
	"github.com/moby/sys/atomicwriter"
	"go.uber.org/zap"

	"github.com/airssys/wasm-fixtures/wasm"
)

// DefaultPath is the relative path the generator writes to.
const DefaultPath = "minimal-component.wasm"

// Write writes the minimal component preamble to path, creating the
// file or replacing an existing one. The write is atomic: the
// destination either keeps its previous content or holds the complete
// preamble, never a truncated one. It returns the number of bytes
// written.
func Write(path string) (int, error) {
	data := wasm.ComponentPreamble()
	if err := atomicwriter.WriteFile(path, data, 0o644); err != nil {
		return 0, &WriteError{Path: path, Cause: err}
	}

	Logger().Debug("fixture written",
		zap.String("path", path),
		zap.Int("bytes", len(data)))

	return len(data), nil
}
