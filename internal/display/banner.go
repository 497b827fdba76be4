package display

import (
	"fmt"
	"os"

	"github.com/knightnemo/vid2world/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if logging.Cyan != "" {
		fmt.Fprint(os.Stdout, logging.Cyan)
	}
	fmt.Fprint(os.Stdout, `__     ___     _ ____ __        __         _     _
\ \   / (_) __| |___ \\ \      / /__  _ __| | __| |
 \ \ / /| |/ _`+"`"+` | __) |\ \ /\ / / _ \| '__| |/ _`+"`"+` |
  \ V /| | (_| |/ __/  \ V  V / (_) | |  | | (_| |
   \_/ |_|\__,_|_____|  \_/\_/ \___/|_|  |_|\__,_|
`)
	if logging.Cyan != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
