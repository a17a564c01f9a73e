package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pagekit/pagekit/internal/model"
	"github.com/wI2L/jsondiff"
)

// ErrNoChanges is returned by Patch when both states are identical.
var ErrNoChanges = errors.New("no changes detected")

// Patch returns the RFC 6902 patch turning before into after.
func Patch(before, after *model.ViewState) (string, error) {
	patch, err := jsondiff.Compare(before, after)
	if err != nil {
		return "", fmt.Errorf("failed to generate patch: %w", err)
	}
	if len(patch) == 0 {
		return "", ErrNoChanges
	}

	bb, err := json.Marshal(patch)
	if err != nil {
		return "", fmt.Errorf("failed to marshal patch: %w", err)
	}

	return string(bb), nil
}
