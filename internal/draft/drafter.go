package draft

import (
	"fmt"
	"strings"

	"coldreach/internal/hypothesis"
	"coldreach/internal/prospect"
	"coldreach/internal/strategy"
)

type Tone string

const (
	ToneNeutral        Tone = ""
	ToneConversational Tone = "conversational"
	ToneAnalytical     Tone = "analytical"
)

type Options struct {
	// Seed drives phrase variation. The revision loop feeds the previous
	// draft text back in here, so every retry reads differently.
	Seed string
	Tone Tone
}

type Draft struct {
	Message    string
	Strategy   strategy.Strategy
	Hypothesis hypothesis.Hypothesis
	Prospect   prospect.Profile
}

type Drafter struct {
	maxWords int
}

func NewDrafter() *Drafter {
	return &Drafter{maxWords: MaxWords}
}

// Draft renders the five message slots: greeting, relevance statement,
// value statement, call-to-action, closing.
func (d *Drafter) Draft(strat strategy.Strategy, hyp hypothesis.Hypothesis, p prospect.Profile, opts Options) Draft {
	pick := func(slot string, bank []string) string {
		return Pick(opts.Seed+"|"+string(opts.Tone)+"|"+slot, bank)
	}

	greetBank, closeBank := greetings, closings
	if opts.Tone == ToneConversational {
		greetBank, closeBank = conversationalGreetings, conversationalClosings
	}

	greeting := fmt.Sprintf(pick("greeting", greetBank), p.FirstName())

	tp := topicOf(hyp)
	var relevance string
	if tp == topicGeneric {
		relevance = fmt.Sprintf(pick("relevance", relevanceByTopic[tp]), p.Industry, p.CompanyName)
	} else {
		relevance = fmt.Sprintf(pick("relevance", relevanceByTopic[tp]), p.CompanyName)
	}

	value := pick("value", valueByKind[strat.Kind])
	cta := pick("cta", ctaByLevel[strat.CTALevel])
	closing := pick("closing", closeBank)

	body := strings.Join([]string{relevance, value, cta}, " ")
	message := greeting + "\n\n" + body + "\n\n" + closing

	message = enforceWordLimit(message, d.maxWords)
	message = applySubstitutions(message)

	return Draft{
		Message:    message,
		Strategy:   strat,
		Hypothesis: hyp,
		Prospect:   p,
	}
}
