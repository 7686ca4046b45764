package roof

import (
	"log/slog"

	"github.com/lixenwraith/housegen/core"
)

// Logger returns the shared generator logger scoped to this package
func Logger() *slog.Logger {
	return core.Logger().With("pkg", "roof")
}
