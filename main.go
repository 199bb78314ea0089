package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	plain := flag.Bool("plain", false, "read commands from stdin instead of running the terminal UI")
	configPath := flag.String("config", defaultConfigPath(), "path to the rc file")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	config := loadConfig(*configPath)
	closer := initLogger(config, *debug)
	defer closer.Close()
	logInfoModule("main", "starting, plain=%v", *plain)

	if *plain {
		if err := runPlain(os.Stdin, os.Stdout, config); err != nil {
			log.Fatal(err)
		}
		return
	}

	p := tea.NewProgram(initialModel(config), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func newCanvas(config *Config) *Canvas {
	bg, ok := parseHexColor(config.Background)
	if !ok {
		bg = color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return NewCanvas(canvasWidth, canvasHeight, bg)
}

func initialModel(config *Config) model {
	canvas := newCanvas(config)
	return model{
		mode:    ModeNormal,
		canvas:  canvas,
		toolbar: NewToolbar(canvas),
		config:  config,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.help {
			switch msg.String() {
			case "?", "esc", "q", "enter":
				m.help = false
			}
			return m, nil
		}

		switch m.mode {
		case ModeNormal:
			return m.handleNormalKey(msg)
		case ModeShapeSelect:
			return m.handleShapeSelectKey(msg)
		case ModeColorSelect:
			return m.handleColorSelectKey(msg)
		case ModeColorInput:
			return m.handleColorInputKey(msg)
		case ModePrompt:
			return m.handlePromptKey(msg)
		case ModeAlert:
			switch msg.String() {
			case "enter", "esc", " ", "o":
				m.mode = ModeNormal
			}
			return m, nil
		case ModeConfirm:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N", "esc":
				m.mode = ModeNormal
			}
			return m, nil
		}
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.successMessage = ""
	switch key := msg.String(); key {
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "s", "tab":
		m.shapeCursor = int(m.toolbar.Shape())
		m.mode = ModeShapeSelect
	case "c":
		m.colorCursor = paletteIndex(m.toolbar.Fill())
		m.mode = ModeColorSelect
	case "1", "2", "3", "4":
		m.selectShape(shapeKinds[key[0]-'1'])
	}
	return m, nil
}

func (m model) handleShapeSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
	case tea.KeyEnter:
		m.selectShape(shapeKinds[m.shapeCursor])
	default:
		m.shapeCursor = moveListCursor(msg.String(), m.shapeCursor, len(shapeKinds))
	}
	return m, nil
}

// the entry after the palette is the custom hex input
func (m model) handleColorSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
	case tea.KeyEnter:
		if m.colorCursor == len(palette) {
			m.colorText = ""
			m.mode = ModeColorInput
			return m, nil
		}
		m.pickColor(palette[m.colorCursor].Color)
	default:
		m.colorCursor = moveListCursor(msg.String(), m.colorCursor, len(palette)+1)
	}
	return m, nil
}

func (m model) handleColorInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
	case tea.KeyEnter:
		c, ok := parseHexColor(m.colorText)
		if !ok {
			m.showAlert(alertColorHeader, fmt.Sprintf("%q is not a #rrggbb color.", m.colorText))
			return m, nil
		}
		m.pickColor(c)
	case tea.KeyBackspace:
		if n := len(m.colorText); n > 0 {
			m.colorText = m.colorText[:n-1]
		}
	case tea.KeyRunes:
		m.colorText += string(msg.Runes)
	}
	return m, nil
}

func (m model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		logDebugModule("prompt", "cancelled")
		m.promptText = ""
		m.mode = ModeNormal
	case tea.KeyEnter:
		m.submitPrompt()
	case tea.KeyCtrlV:
		text, err := readClipboard()
		if err != nil {
			logWarnModule("prompt", "clipboard read failed: %v", err)
			return m, nil
		}
		m.promptText, m.promptCursor = insertAtCursor(m.promptText, m.promptCursor, cleanClipboardText(text))
	default:
		m.promptText, m.promptCursor = editLine(msg, m.promptText, m.promptCursor)
	}
	return m, nil
}

// selectShape resets the toolbar for kind and opens the vertex prompt.
func (m *model) selectShape(kind ShapeKind) {
	m.toolbar.SelectShape(kind)
	m.shapeCursor = int(kind)
	m.promptText = ""
	m.promptCursor = 0
	m.mode = ModePrompt
}

func (m *model) pickColor(c color.Color) {
	m.mode = ModeNormal
	if err := m.toolbar.PickColor(c); err != nil {
		m.showRenderError(err)
	}
}

func (m *model) submitPrompt() {
	err := m.toolbar.Submit(m.promptText)
	m.promptText = ""
	m.promptCursor = 0
	m.mode = ModeNormal

	var parseErr *ParseError
	switch {
	case err == nil:
		m.successMessage = fmt.Sprintf("Drew %s", m.toolbar.Shape())
	case errors.As(err, &parseErr):
		m.showAlert(alertParseHeader, alertParseContent)
	default:
		m.showRenderError(err)
	}
}

func (m *model) showRenderError(err error) {
	var rangeErr *OutOfRangeError
	if errors.As(err, &rangeErr) {
		m.showAlert(alertRangeHeader, rangeErr.Error())
		return
	}
	m.showAlert(alertTitle, err.Error())
}

func (m *model) showAlert(header, content string) {
	m.alertHeader = header
	m.alertContent = content
	m.mode = ModeAlert
}

// paletteIndex is the palette position of c; custom colors map to the custom
// entry.
func paletteIndex(c color.Color) int {
	if c == nil {
		return 0
	}
	for i, p := range palette {
		if p.Color != nil && hexString(p.Color) == hexString(c) {
			return i
		}
	}
	return len(palette)
}
