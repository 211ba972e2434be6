package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CollectionsApp adapts CollectionsModel to tea.Model for program startup.
type CollectionsApp struct {
	Model CollectionsModel
}

// Init implements tea.Model
func (a CollectionsApp) Init() tea.Cmd {
	return a.Model.Init()
}

// Update implements tea.Model
func (a CollectionsApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.Model.Update(msg)
	a.Model = m
	return a, cmd
}

// View implements tea.Model
func (a CollectionsApp) View() string {
	return a.Model.View()
}

// RestoreApp adapts RestoreModel to tea.Model for program startup.
type RestoreApp struct {
	Model RestoreModel
}

// Init implements tea.Model
func (a RestoreApp) Init() tea.Cmd {
	return a.Model.Init()
}

// Update implements tea.Model
func (a RestoreApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.Model.Update(msg)
	a.Model = m
	return a, cmd
}

// View implements tea.Model
func (a RestoreApp) View() string {
	return a.Model.View()
}
