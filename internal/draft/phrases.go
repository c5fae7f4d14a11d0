package draft

import (
	"coldreach/internal/hypothesis"
	"coldreach/internal/signal"
	"coldreach/internal/strategy"
)

type topic string

const (
	topicMomentum topic = "momentum"
	topicTech     topic = "technology"
	topicRole     topic = "role-change"
	topicGeneric  topic = "generic"
)

func topicOf(h hypothesis.Hypothesis) topic {
	switch h.PrimaryKind {
	case signal.KindFundingEvent, signal.KindGrowth:
		return topicMomentum
	case signal.KindTechAdoption:
		return topicTech
	case signal.KindRoleChange:
		return topicRole
	default:
		return topicGeneric
	}
}

var greetings = []string{
	"Hi %s,",
	"Hello %s,",
}

var conversationalGreetings = []string{
	"Hi %s,",
	"Hey %s,",
}

// Relevance statements name the company and the observed event without
// embellishing either.
var relevanceByTopic = map[topic][]string{
	topicMomentum: {
		"It looks like %s has real momentum at the moment, and that usually puts new plans on the table.",
		"I noticed %s is in a period of growth, which tends to change what the team needs week to week.",
		"From what I can see, things are moving quickly at %s right now.",
	},
	topicTech: {
		"I saw that %s has been changing part of its technology setup recently.",
		"It looks like the team at %s is rethinking some of its tooling.",
		"I noticed %s made a technology change recently, which often shifts day-to-day priorities.",
	},
	topicRole: {
		"I saw there has been a leadership change at %s, which usually means priorities get a fresh look.",
		"It looks like %s has someone new shaping the roadmap, and that is often when plans get revisited.",
	},
	topicGeneric: {
		"I follow what is happening in your corner of the %s space and thought of %s.",
		"Companies in %s seem to be rethinking a few things lately, and %s came to mind.",
	},
}

var valueByKind = map[strategy.Kind][]string{
	strategy.DirectAlignment: {
		"Moments like this are usually when teams tighten up how they reach new customers, and that is the specific problem we work on.",
		"Teams in that position often want their outreach to keep pace with everything else, which is exactly where we spend our time.",
	},
	strategy.InsightLed: {
		"One pattern we keep noticing: the teams that handle this well start by fixing how they qualify interest, not by sending more messages.",
		"Something we have seen repeatedly is that small changes to how interest gets qualified matter more than volume.",
	},
	strategy.SoftCuriosity: {
		"I am genuinely curious how your team is thinking about this area right now, if at all.",
		"I do not know whether this is even on your radar, and I would honestly like to hear how you see it.",
	},
}

var ctaByLevel = map[strategy.CTALevel][]string{
	strategy.CTANone: {
		"No ask here; if the timing is wrong, please feel free to ignore this.",
		"There is nothing to act on, I simply wanted to share the thought.",
	},
	strategy.CTASoft: {
		"If it would ever be useful, I am happy to share what we have seen work elsewhere.",
		"If any of this resonates, I would be glad to trade notes sometime.",
	},
	strategy.CTADirect: {
		"Would you be open to a short call next week?",
		"Do you have fifteen minutes next week to compare notes?",
	},
}

var closings = []string{
	"Best regards,",
	"All the best,",
	"Thanks for your time,",
}

var conversationalClosings = []string{
	"Cheers,",
	"All the best,",
}
