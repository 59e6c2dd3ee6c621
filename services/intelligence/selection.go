package intelligence

import (
	"context"
	"encoding/json"
	"fmt"

	"meetplan/models"
)

const selectionPrompt = `You pick the best meeting slot from a ranked list.
Prefer mid-morning starts, avoid lunchtime, and respect the stated preferences.
Reply with a single JSON object and nothing else:
{"slot_index": 0, "reasoning": "why this slot", "alternative_slots": [1, 2]}
slot_index is zero-based into the list below.

Meeting: %s (%d minutes, %d participants)
Preferences: %s

%s`

// GeminiSlotSelector chooses a slot index with the LLM.
type GeminiSlotSelector struct {
	Generator TextGenerator
}

// SelectSlot asks the model to choose from the formatted candidate list.
// Callers fall back to the first slot when this fails.
func (s *GeminiSlotSelector) SelectSlot(
	ctx context.Context,
	formattedSlots string,
	req models.MeetingRequest,
	participantCount int,
) (*models.SlotSelection, error) {
	prefs, err := json.Marshal(req.Preferences)
	if err != nil {
		prefs = []byte("{}")
	}

	prompt := fmt.Sprintf(selectionPrompt,
		req.Subject, req.DurationMinutes, participantCount, string(prefs), formattedSlots)

	raw, err := s.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("slot selection failed: %w", err)
	}

	var selection models.SlotSelection
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &selection); err != nil {
		return nil, fmt.Errorf("slot selection returned invalid JSON: %w", err)
	}
	if selection.SlotIndex < 0 {
		return nil, fmt.Errorf("slot selection returned negative index %d", selection.SlotIndex)
	}
	return &selection, nil
}
