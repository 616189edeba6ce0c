// Package menu implements the interactive suite picker.
package menu

import (
	"errors"
	"fmt"

	"github.com/conn-castle/ownerbench/internal/messages"
)

// Choice is one runnable menu entry.
type Choice struct {
	Key   string
	Label string
}

// Run prompts with choices plus an exit entry until the user exits or aborts
// the prompt, calling run with the key of every picked choice.
// Leaving with Esc or Ctrl+C is a normal exit.
func Run(ui UI, choices []Choice, run func(key string) error) error {
	labels := make([]string, 0, len(choices)+1)
	byLabel := make(map[string]string, len(choices))
	for _, c := range choices {
		labels = append(labels, c.Label)
		byLabel[c.Label] = c.Key
	}
	labels = append(labels, messages.MenuExitOption)

	selected := labels[0]
	for {
		err := ui.Select(messages.MenuTitle, labels, &selected)
		if errors.Is(err, ErrBack) || errors.Is(err, ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		if selected == messages.MenuExitOption {
			return nil
		}
		key, ok := byLabel[selected]
		if !ok {
			return fmt.Errorf(messages.MenuUnknownChoiceFmt, selected)
		}
		if err := run(key); err != nil {
			return err
		}
	}
}
