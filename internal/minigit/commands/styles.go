package commands

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the printing commands.
var (
	branchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	stagedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	modifiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	untrackedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hashStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	mergeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)
