package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// BannerStyle defines the styling for the startup banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#5436bd")).
	Bold(true)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	SubtleStyle  = lipgloss.NewStyle().Faint(true)
)

// PrintBanner prints the "dcmfx" startup banner to stderr.
func PrintBanner() {
	fmt.Fprintln(os.Stderr, BannerStyle.Render("dcmfx — DICOM Part 10 streaming codec"))
	fmt.Fprintln(os.Stderr)
}
