package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// ConfirmPost asks whether the summary should be posted to the pull request
func ConfirmPost(prNumber int, jobCount int) (bool, error) {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Post summary of %d failed job(s) to PR #%d", jobCount, prNumber),
		IsConfirm: true,
	}

	_, err := prompt.Run()
	if err != nil {
		// promptui reports "n" as ErrAbort
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return true, nil
}
