package pages

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Submit   key.Binding
	Previous key.Binding
	Finish   key.Binding
}

var keys = keyMap{
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
	Previous: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "previous")),
	Finish:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "finish")),
}

// hints flattens bindings into key-description pairs.
func hints(bindings ...key.Binding) []string {
	pairs := make([]string, 0, 2*len(bindings))
	for _, b := range bindings {
		h := b.Help()
		pairs = append(pairs, h.Key, h.Desc)
	}
	return pairs
}
