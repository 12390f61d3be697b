package ui

import (
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// CopiedToClipboardMsg is sent after text is copied to the clipboard
type CopiedToClipboardMsg struct {
	Success bool
}

// CopyToClipboardCmd returns a command to copy text to the system clipboard
func CopyToClipboardCmd(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	return func() tea.Msg {
		return CopiedToClipboardMsg{Success: copyToClipboard(text)}
	}
}

// copyToClipboard copies text to the system clipboard
func copyToClipboard(text string) bool {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		// Try xclip first, then xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return false
		}
	case "windows":
		cmd = exec.Command("clip")
	default:
		return false
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run() == nil
}
