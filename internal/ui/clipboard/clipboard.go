// Package clipboard copies text out of the TUI — yanked file paths and
// the preview server URL.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Write copies text to the system clipboard. The native clipboard
// (pbcopy, wl-copy, xclip) is tried first; over SSH or inside tmux that
// usually fails, so it falls back to an OSC52 escape sequence and lets
// the terminal emulator do the copy.
func Write(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	return writeOSC52(text)
}

// writeOSC52 emits the sequence on stderr: stdout belongs to the
// renderer and must not be interleaved with.
func writeOSC52(text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	seq := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)
	_, err := os.Stderr.Write([]byte(seq))
	return err
}
