package ui

import "github.com/dstrand/filmstrip/internal/ui/panels"

// Type aliases to panels message types — single source of truth.

// QueueUpdatedMsg is sent when anything in the file queue changes.
type QueueUpdatedMsg = panels.QueueUpdatedMsg

// RunStartedMsg is sent when the generation pipeline starts a new run.
type RunStartedMsg = panels.RunStartedMsg

// RunEndedMsg is sent when the generation pipeline finishes the run.
type RunEndedMsg = panels.RunEndedMsg

// UIStateMsg carries the host-supplied loading state.
type UIStateMsg = panels.UIStateMsg

// YankMsg asks the app to copy text to the clipboard.
type YankMsg = panels.YankMsg

// ClearFlashMsg clears the status bar flash.
type ClearFlashMsg = panels.ClearFlashMsg
