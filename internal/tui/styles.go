package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	taglineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTab     = tabStyle.Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true)
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	cardStyle     = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))
	selectedCard  = cardStyle.BorderForeground(lipgloss.Color("170"))
	doneTitle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241"))
	inputBoxStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1)
)
