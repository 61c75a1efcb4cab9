package ui

// Minimum terminal size for a usable layout.
const (
	MinWidth  = 60
	MinHeight = 16
)

type Layout struct {
	FileListWidth  int
	FileListHeight int
	PreviewWidth   int
	PreviewHeight  int
	StatusBarWidth int
	TooSmall       bool
}

// Calculate splits the terminal into the file list column, the preview
// pane, and a one-row status bar.
func Calculate(width, height int) Layout {
	if width < MinWidth || height < MinHeight {
		return Layout{TooSmall: true}
	}

	fileListWidth := width / 3
	if fileListWidth > 44 {
		fileListWidth = 44
	}
	panelHeight := height - 1 // status bar

	return Layout{
		FileListWidth:  fileListWidth,
		FileListHeight: panelHeight,
		PreviewWidth:   width - fileListWidth,
		PreviewHeight:  panelHeight,
		StatusBarWidth: width,
	}
}
