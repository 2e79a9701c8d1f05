package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Inputs  key.Binding
	Output  key.Binding
	Convert key.Binding
	Up      key.Binding
	Down    key.Binding
	Prev    key.Binding
	Next    key.Binding
	Toggle  key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Inputs:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "pick files")),
		Output:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "pick output")),
		Convert: key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "convert")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "option up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "option down")),
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous value")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next value")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Dismiss: key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "dismiss notice")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Inputs, k.Output, k.Convert, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Inputs, k.Output, k.Convert},
		{k.Up, k.Down, k.Prev, k.Next, k.Toggle},
		{k.Dismiss, k.Quit},
	}
}

type pickerKeyMap struct {
	Toggle  key.Binding
	Done    key.Binding
	UseDir  key.Binding
	Open    key.Binding
	Back    key.Binding
	Cancel  key.Binding
	outputs bool
}

func newPickerKeyMap(outputs bool) pickerKeyMap {
	return pickerKeyMap{
		Toggle:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle file")),
		Done:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "done")),
		UseDir:  key.NewBinding(key.WithKeys("."), key.WithHelp(".", "use this folder")),
		Open:    key.NewBinding(key.WithKeys("l", "right", "enter"), key.WithHelp("enter/→", "open folder")),
		Back:    key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("←/h", "parent folder")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		outputs: outputs,
	}
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	if k.outputs {
		return []key.Binding{k.Open, k.Back, k.UseDir, k.Cancel}
	}
	return []key.Binding{k.Toggle, k.Back, k.Done, k.Cancel}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
