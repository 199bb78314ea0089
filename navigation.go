package main

import tea "github.com/charmbracelet/bubbletea"

// moveListCursor moves a selector cursor over n entries, wrapping at both ends.
func moveListCursor(key string, cursor, n int) int {
	if n <= 0 {
		return 0
	}
	switch key {
	case "k", "up", "shift+tab":
		cursor--
	case "j", "down", "tab":
		cursor++
	case "home", "g":
		cursor = 0
	case "end", "G":
		cursor = n - 1
	}
	return ((cursor % n) + n) % n
}

// editLine applies a single-line editing key to text. pos is a rune offset.
func editLine(msg tea.KeyMsg, text string, pos int) (string, int) {
	runes := []rune(text)
	if pos > len(runes) {
		pos = len(runes)
	}
	switch msg.Type {
	case tea.KeyLeft:
		if pos > 0 {
			pos--
		}
	case tea.KeyRight:
		if pos < len(runes) {
			pos++
		}
	case tea.KeyHome, tea.KeyCtrlA:
		pos = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		pos = len(runes)
	case tea.KeyBackspace:
		if pos > 0 {
			runes = append(runes[:pos-1], runes[pos:]...)
			pos--
		}
	case tea.KeyDelete:
		if pos < len(runes) {
			runes = append(runes[:pos], runes[pos+1:]...)
		}
	case tea.KeySpace:
		return insertAtCursor(text, pos, " ")
	case tea.KeyRunes:
		return insertAtCursor(text, pos, string(msg.Runes))
	}
	return string(runes), pos
}

func insertAtCursor(text string, pos int, s string) (string, int) {
	runes := []rune(text)
	if pos > len(runes) {
		pos = len(runes)
	}
	ins := []rune(s)
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:pos]...)
	out = append(out, ins...)
	out = append(out, runes[pos:]...)
	return string(out), pos + len(ins)
}
