package cfgloader

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rise-and-shine/docview/mask"
)

// printConfig prints the config with fields tagged `mask:"true"` hidden.
func printConfig(config any) {
	out, err := json.MarshalIndent(mask.StructToOrdMap(config), "", "  ")
	if err != nil {
		slog.Error("[cfgloader]: failed to marshal config", "error", err.Error())
		return
	}
	slog.Info(fmt.Sprintf("[cfgloader]: loaded config:\n%s", string(out)))
}
