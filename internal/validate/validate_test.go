package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldreach/internal/prospect"
	"coldreach/internal/signal"
)

func validRequest() Request {
	now := time.Now()
	return Request{
		Prospect: prospect.Profile{
			Role:         "VP Engineering",
			CompanyName:  "Acme Robotics",
			Industry:     "industrial automation",
			SizeCategory: "mid-market",
			ContactName:  "Jordan Lee",
			Email:        "jordan@acme.example",
		},
		Signals: []signal.RawSignal{
			{
				Kind:        signal.KindFundingEvent,
				Description: "Announced a Series B round",
				ObservedAt:  now.Add(-48 * time.Hour),
				Relevance:   0.9,
				Source:      "press release",
			},
			{
				Kind:        signal.KindGrowth,
				Description: "Opened a second office",
				ObservedAt:  now.Add(-24 * time.Hour),
				Relevance:   0.7,
				Source:      "company blog",
			},
		},
	}
}

func TestCheckValid(t *testing.T) {
	assert.NoError(t, Check(validRequest()))
}

func TestCheckProspect(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		req := validRequest()
		req.Prospect.Role = ""
		req.Prospect.ContactName = "   "

		err := Check(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prospect.role")
		assert.Contains(t, err.Error(), "prospect.contact_name")
	})

	t.Run("bad email", func(t *testing.T) {
		req := validRequest()
		req.Prospect.Email = "not-an-address"

		err := Check(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prospect.email")
	})
}

func TestCheckSignals(t *testing.T) {
	t.Run("too few", func(t *testing.T) {
		req := validRequest()
		req.Signals = req.Signals[:1]

		err := Check(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 2 signals")
	})

	t.Run("unknown kind", func(t *testing.T) {
		req := validRequest()
		req.Signals[0].Kind = "astrology"

		err := Check(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `signals[0].kind`)
	})

	t.Run("relevance out of range", func(t *testing.T) {
		for _, relevance := range []float64{-0.1, 1.1} {
			req := validRequest()
			req.Signals[1].Relevance = relevance

			err := Check(req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "signals[1].relevance")
		}
	})

	t.Run("missing timestamp", func(t *testing.T) {
		req := validRequest()
		req.Signals[0].ObservedAt = time.Time{}

		err := Check(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signals[0].observed_at is required")
	})

	t.Run("future timestamp", func(t *testing.T) {
		req := validRequest()
		req.Signals[0].ObservedAt = time.Now().Add(time.Hour)

		err := Check(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signals[0].observed_at is in the future")
	})

	t.Run("problems accumulate", func(t *testing.T) {
		req := validRequest()
		req.Signals[0].Description = ""
		req.Signals[0].Source = ""

		err := Check(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signals[0].description")
		assert.Contains(t, err.Error(), "signals[0].source")
	})
}

func TestParse(t *testing.T) {
	t.Run("well-formed payload", func(t *testing.T) {
		payload := `{
			"prospect": {
				"role": "VP Engineering",
				"company_name": "Acme Robotics",
				"industry": "industrial automation",
				"size_category": "mid-market",
				"contact_name": "Jordan Lee",
				"email": "jordan@acme.example"
			},
			"signals": [
				{"kind": "funding-event", "description": "Announced a Series B round", "observed_at": "2026-03-01T00:00:00Z", "relevance": 0.9, "source": "press release"},
				{"kind": "growth", "description": "Opened a second office", "observed_at": "2026-03-05T00:00:00Z", "relevance": 0.7, "source": "company blog"}
			]
		}`

		req, err := Parse(strings.NewReader(payload))
		require.NoError(t, err)
		assert.Equal(t, "Acme Robotics", req.Prospect.CompanyName)
		require.Len(t, req.Signals, 2)
		assert.Equal(t, signal.KindFundingEvent, req.Signals[0].Kind)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Parse(strings.NewReader("{not json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode")
	})

	t.Run("decoded but invalid", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`{"prospect": {}, "signals": []}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid request")
	})
}
