package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	toolbarStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	dialogStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
	alertStyle = dialogStyle.Copy().BorderForeground(lipgloss.Color("#e01b24"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

const swatchSize = 2

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	cols := m.previewWidth()
	preview := renderPreview(m.canvas.Image(), cols)

	var result strings.Builder
	result.WriteString(m.toolbarView())
	result.WriteString("\n")

	if dialog := m.dialogView(); dialog != "" {
		result.WriteString(lipgloss.Place(cols, len(preview), lipgloss.Center, lipgloss.Center, dialog))
	} else {
		result.WriteString(strings.Join(preview, "\n"))
	}

	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) previewWidth() int {
	cols := m.config.PreviewWidth
	if m.width > 0 && m.width < cols {
		cols = m.width
	}
	return cols
}

func (m model) toolbarView() string {
	fill := m.toolbar.Fill()
	swatch := strings.Repeat(" ", swatchSize)
	if fill != nil {
		swatch = lipgloss.NewStyle().Background(lipgloss.Color(hexString(fill))).Render(swatch)
	}
	return toolbarStyle.Render(fmt.Sprintf("Color: %s %s   Shape: %s", swatch, colorName(fill), m.toolbar.Shape()))
}

func (m model) dialogView() string {
	switch m.mode {
	case ModeShapeSelect:
		lines := []string{titleStyle.Render("Shape")}
		for i, k := range shapeKinds {
			lines = append(lines, listEntry(k.String(), i == m.shapeCursor))
		}
		return dialogStyle.Render(strings.Join(lines, "\n"))
	case ModeColorSelect:
		lines := []string{titleStyle.Render("Color")}
		for i, p := range palette {
			lines = append(lines, listEntry(p.Name, i == m.colorCursor))
		}
		lines = append(lines, listEntry("Custom...", m.colorCursor == len(palette)))
		return dialogStyle.Render(strings.Join(lines, "\n"))
	case ModeColorInput:
		return dialogStyle.Render(titleStyle.Render("Custom color (#rrggbb)") + "\n" + m.colorText + "█")
	case ModePrompt:
		runes := []rune(m.promptText)
		pos := m.promptCursor
		if pos > len(runes) {
			pos = len(runes)
		}
		field := string(runes[:pos]) + "█" + string(runes[pos:])
		return dialogStyle.Render(titleStyle.Render(promptHeader) + "\n" + field)
	case ModeAlert:
		return alertStyle.Render(titleStyle.Render(alertTitle+": "+m.alertHeader) + "\n" + m.alertContent + "\n\n[ OK ]")
	case ModeConfirm:
		return dialogStyle.Render("Quit? (y/n)")
	}
	return ""
}

func listEntry(label string, selected bool) string {
	if selected {
		return selectedStyle.Render("> " + label)
	}
	return "  " + label
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeShapeSelect, ModeColorSelect:
		return "↑/↓=choose, Enter=select, Esc=cancel"
	case ModeColorInput:
		return "Enter=apply, Esc=cancel"
	case ModePrompt:
		return "Enter=draw, Ctrl+V=paste, Esc=cancel"
	case ModeAlert:
		return "Enter=OK"
	case ModeConfirm:
		return "y=quit, n=stay"
	}
	if m.successMessage != "" {
		return m.successMessage + " | ? for help | q to quit"
	}
	return "s=shape, c=color, 1-4=quick shape | ? for help | q to quit"
}

func (m model) helpView() string {
	help := []string{
		titleStyle.Render("shapecad"),
		"",
		"Pick a shape, type its vertex data, and it replaces the drawing.",
		"",
		"  s / Tab     open the shape selector",
		"  1 2 3 4     Line, Rectangle, Circle, Triangle",
		"  c           open the color picker",
		"  q           quit",
		"  ?           toggle this help",
		"",
		"Vertex data (comma separated):",
		"  Line        x1, y1, x2, y2",
		"  Rectangle   x, y, width, height",
		"  Circle      x, y, radius            (y measured from the bottom)",
		"  Triangle    x1, x2, x3, y1, y2, y3  (y measured from the bottom)",
		"",
		fmt.Sprintf("The canvas is %dx%d.", canvasWidth, canvasHeight),
	}
	return dialogStyle.Render(strings.Join(help, "\n"))
}
