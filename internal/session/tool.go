package session

import (
	"fmt"
	"strings"
)

// Tool decides what a primary-button drag does.
type Tool int

const (
	// ToolNormal pans the view.
	ToolNormal Tool = iota
	// ToolSelect draws a new selection.
	ToolSelect
	// ToolModify moves or resizes the existing selection.
	ToolModify
)

var toolNames = [...]string{
	ToolNormal: "normal",
	ToolSelect: "select",
	ToolModify: "modify",
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// ParseTool returns the tool with the given name.
func ParseTool(s string) (Tool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range toolNames {
		if name == s {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}

// ToolForRune maps the keyboard shortcut r to a tool.
func ToolForRune(r rune) (Tool, bool) {
	switch r {
	case 'n', 'N':
		return ToolNormal, true
	case 's', 'S':
		return ToolSelect, true
	case 'm', 'M':
		return ToolModify, true
	}
	return 0, false
}

// Mode is the interaction currently in progress.
type Mode int

const (
	ModeIdle Mode = iota
	ModePanning
	ModeDrawing
	ModeMoving
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePanning:
		return "panning"
	case ModeDrawing:
		return "drawing"
	case ModeMoving:
		return "moving"
	case ModeResizing:
		return "resizing"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
