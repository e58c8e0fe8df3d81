package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-algorithms/bst"
	"github.com/amp-labs/amp-algorithms/sortable"
	"github.com/manifoldco/promptui"
)

const doneChoice = "[Done]"

// ErrNotOffered is returned when a prompt answers with an item it was not shown.
var ErrNotOffered = errors.New("choice not offered")

// selectFunc shows items under label and returns the picked index and item.
type selectFunc func(label string, items []string) (int, string, error)

// MultiSelect lets the user pick any number of choices, one prompt at a
// time, until they pick "[Done]" or nothing is left. Choices are listed in
// natural order and typing filters them by prefix. The picks are returned in
// the order they appear in choices.
func MultiSelect(label string, choices ...string) ([]string, error) {
	return multiSelect(label, promptSelect, choices...)
}

func promptSelect(label string, items []string) (int, string, error) {
	sel := &promptui.Select{
		Label: label,
		Items: items,
		Searcher: func(input string, index int) bool {
			if index == 0 || len(input) == 0 {
				return false
			}

			return strings.HasPrefix(items[index], input)
		},
	}

	return sel.Run()
}

func multiSelect(label string, run selectFunc, choices ...string) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	remaining := bst.New[sortable.NaturalString]()
	for _, c := range choices {
		remaining.Insert(sortable.NaturalString(c))
	}

	selections := bst.New[sortable.NaturalString]()

	for remaining.Len() > 0 {
		items := []string{doneChoice}
		for c := range remaining.All() {
			items = append(items, string(c))
		}

		idx, value, err := run(label, items)
		if err != nil {
			return nil, err
		}

		if idx == 0 {
			break
		}

		picked := remaining.Find(sortable.NaturalString(value))
		if picked.Empty() {
			return nil, fmt.Errorf("%w: %q", ErrNotOffered, value)
		}

		choice := picked.GetOrPanic()
		selections.Insert(choice)
		remaining.Delete(choice)
	}

	var out []string

	for _, c := range choices {
		if selections.Delete(sortable.NaturalString(c)) {
			out = append(out, c)
		}
	}

	return out, nil
}
