package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/mail"
	"strings"
	"time"

	"coldreach/internal/prospect"
	"coldreach/internal/signal"
)

const MinSignals = 2

type Request struct {
	Prospect prospect.Profile   `json:"prospect"`
	Signals  []signal.RawSignal `json:"signals"`
}

// Parse decodes and structurally validates an inbound request. The core
// pipeline assumes these checks have already run.
func Parse(r io.Reader) (Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return Request{}, fmt.Errorf("failed to decode request: %w", err)
	}
	if err := Check(req); err != nil {
		return Request{}, err
	}
	return req, nil
}

func Check(req Request) error {
	var problems []string

	p := req.Prospect
	for _, field := range []struct {
		name  string
		value string
	}{
		{"role", p.Role},
		{"company_name", p.CompanyName},
		{"industry", p.Industry},
		{"size_category", p.SizeCategory},
		{"contact_name", p.ContactName},
	} {
		if strings.TrimSpace(field.value) == "" {
			problems = append(problems, fmt.Sprintf("prospect.%s is required", field.name))
		}
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		problems = append(problems, "prospect.email is not a valid address")
	}

	if len(req.Signals) < MinSignals {
		problems = append(problems, fmt.Sprintf("at least %d signals are required", MinSignals))
	}

	now := time.Now()
	for i, s := range req.Signals {
		if !s.Kind.IsValid() {
			problems = append(problems, fmt.Sprintf("signals[%d].kind %q is not recognized", i, s.Kind))
		}
		if strings.TrimSpace(s.Description) == "" {
			problems = append(problems, fmt.Sprintf("signals[%d].description is required", i))
		}
		if strings.TrimSpace(s.Source) == "" {
			problems = append(problems, fmt.Sprintf("signals[%d].source is required", i))
		}
		if math.IsNaN(s.Relevance) || s.Relevance < 0 || s.Relevance > 1 {
			problems = append(problems, fmt.Sprintf("signals[%d].relevance must be between 0 and 1", i))
		}
		if s.ObservedAt.IsZero() {
			problems = append(problems, fmt.Sprintf("signals[%d].observed_at is required", i))
		} else if s.ObservedAt.After(now) {
			problems = append(problems, fmt.Sprintf("signals[%d].observed_at is in the future", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid request: %s", strings.Join(problems, "; "))
	}
	return nil
}
