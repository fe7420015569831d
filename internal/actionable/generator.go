package actionable

import (
	"fmt"

	"mood-insights-go/internal/summary"
	"mood-insights-go/internal/types"
)

type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Tone    string `json:"tone"`
}

// concernShare is the negative share above which a concern is called out.
const concernShare = 35

var concernActions = map[string]string{
	"Anxiety": "Try a short breathing or grounding exercise when nervousness shows up",
	"Sadness": "Reach out to someone you trust and plan one small enjoyable activity",
	"Anger":   "Note what triggered the frustration and take a pause before reacting",
	"Shame":   "Write down one thing you handled well today",
}

func Generate(o types.Overall) ActionCard {
	if o.ObservationCount == 0 {
		return ActionCard{
			Insight: "No mood entries yet",
			Action:  "Log how you feel to start building your mood history",
			Tone:    "neutral",
		}
	}
	if o.NegativePercentage >= concernShare && o.DominantConcern != "" {
		action, ok := concernActions[o.DominantConcern]
		if !ok {
			action = "Keep tracking and look for patterns in difficult days"
		}
		return ActionCard{
			Insight: fmt.Sprintf("%d%% of entries were negative, mostly %s", o.NegativePercentage, o.DominantConcern),
			Action:  action,
			Tone:    "supportive",
		}
	}
	label := summary.Label(o.Label)
	switch label {
	case summary.VeryPositive, summary.Positive:
		return ActionCard{
			Insight: fmt.Sprintf("Overall mood is %s (%d%% positive)", label, o.PositivePercentage),
			Action:  "Notice what is working and keep those routines going",
			Tone:    "encouraging",
		}
	default:
		return ActionCard{
			Insight: fmt.Sprintf("Overall mood is %s", label),
			Action:  "Keep logging to see how your mood shifts over the month",
			Tone:    "neutral",
		}
	}
}
