package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

type CommonModel struct {
	Width  int
	Height int
}

// BackMsg signals the root model to return to the main menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
