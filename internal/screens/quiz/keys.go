package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/navyranks/internal/ui/layout"
)

type keyMap struct {
	Choose  []key.Binding // one per option slot
	Select  key.Binding
	Next    key.Binding
	Restart key.Binding
	Back    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func newKeyMap() keyMap {
	km := keyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Choose"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "space", "n"),
			key.WithHelp("Enter", "Next"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Home"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("Y", "Abandon run"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("N", "Keep going"),
		),
	}
	for _, k := range []string{"1", "2", "3", "4"} {
		km.Choose = append(km.Choose, key.NewBinding(key.WithKeys(k)))
	}
	return km
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}
