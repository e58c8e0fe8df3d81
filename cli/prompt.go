package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	commonerrors "github.com/amp-labs/amp-algorithms/errors"
	"github.com/manifoldco/promptui"
)

// PromptConfirm asks a yes/no question. Declining is not an error.
func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PromptPositiveInt asks for an integer of at least 1, offering def as the
// default answer.
func PromptPositiveInt(label string, def int) (int, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: strconv.Itoa(def),
		Validate: func(s string) error {
			_, err := parsePositive(s)

			return err
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return parsePositive(txt)
}

func parsePositive(s string) (int, error) {
	val, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid integer: %w", commonerrors.ErrInvalidConfig, err)
	}

	if val < 1 {
		return 0, fmt.Errorf("%w: %d is not positive", commonerrors.ErrInvalidConfig, val)
	}

	return int(val), nil
}
