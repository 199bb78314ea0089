package main

// Prompter asks the user for one line of text. ok is false when the user
// cancels.
type Prompter interface {
	Prompt(message string) (text string, ok bool)
}

// Alerter shows a modal error and returns once it is acknowledged.
type Alerter interface {
	Alert(title, header, content string)
}
