package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/calebwei/githeat/internal/contract"
)

// TerminalWidth returns the usable terminal width, preferring the explicit
// override from flag/env over auto-detection.
func TerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Conservative default for narrow terminals and CI.
		return 80
	}
	return detectedWidth
}
