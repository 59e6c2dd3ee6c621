package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"meetplan/models"
)

const parsingPrompt = `You extract meeting details from a scheduling request.
Reply with a single JSON object and nothing else, using exactly these keys:
{
  "subject": "short meeting title",
  "objective": "what the meeting is for",
  "participant_names": ["full or partial names mentioned"],
  "preferred_start_date": "ISO 8601 date or datetime",
  "preferred_end_date": "ISO 8601 date or datetime",
  "duration_minutes": 60,
  "preferences": {}
}
Omit no keys. If the request gives no date range, leave the date fields empty.

Request:
%s`

// GeminiRequestParser extracts structured meeting requests with the LLM.
type GeminiRequestParser struct {
	Generator TextGenerator
}

// parsedRequest mirrors the model's JSON: dates arrive as strings in
// whatever format the model produced and are parsed flexibly afterwards.
type parsedRequest struct {
	Subject          string            `json:"subject"`
	Objective        string            `json:"objective"`
	ParticipantNames []string          `json:"participant_names"`
	PreferredStart   string            `json:"preferred_start_date"`
	PreferredEnd     string            `json:"preferred_end_date"`
	DurationMinutes  int               `json:"duration_minutes"`
	Preferences      map[string]string `json:"preferences"`
}

// ParseMeetingRequest asks the model for a structured extraction of the
// request text. Callers must treat errors as recoverable and fall back to
// defaults; parsing failure never aborts planning.
func (p *GeminiRequestParser) ParseMeetingRequest(ctx context.Context, text string) (*models.MeetingRequest, error) {
	raw, err := p.Generator.GenerateContent(ctx, fmt.Sprintf(parsingPrompt, text))
	if err != nil {
		return nil, fmt.Errorf("request parsing failed: %w", err)
	}

	var parsed parsedRequest
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("request parsing returned invalid JSON: %w", err)
	}

	req := &models.MeetingRequest{
		Subject:          parsed.Subject,
		Objective:        parsed.Objective,
		ParticipantNames: parsed.ParticipantNames,
		DurationMinutes:  parsed.DurationMinutes,
		Preferences:      parsed.Preferences,
	}
	if parsed.PreferredStart != "" {
		if t, err := ParseFlexibleDate(parsed.PreferredStart); err == nil {
			req.PreferredStart = t
		}
	}
	if parsed.PreferredEnd != "" {
		if t, err := ParseFlexibleDate(parsed.PreferredEnd); err == nil {
			req.PreferredEnd = t
		}
	}
	return req, nil
}

// ParseFlexibleDate accepts the date formats a request (or the model) is
// likely to produce: RFC 3339, ISO datetime without zone, bare dates, and
// the European day/month/year form.
func ParseFlexibleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
		"02/01/2006",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// stripCodeFences removes a surrounding markdown code fence, which models
// add even when told not to.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
