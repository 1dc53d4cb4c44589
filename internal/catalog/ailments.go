package catalog

// AilmentProfile describes a known condition and its treatment plan.  The
// profiles are serialized into the persona prompt; the orchestration logic
// never branches on them directly.
type AilmentProfile struct {
	ID             string            `json:"id"`
	Description    string            `json:"description"`
	PrimaryOils    []string          `json:"primary_oils"`
	SupportingOils []string          `json:"supporting_oils"`
	Application    string            `json:"application"`
	Duration       string            `json:"duration"`
	Frequency      string            `json:"frequency"`
	Precautions    string            `json:"precautions"`
	Benefits       string            `json:"benefits"`
	Measurements   map[string]string `json:"measurements"`
}

// Ailments returns all profiles in declaration order.
func Ailments() []AilmentProfile { return ailments }

var ailments = []AilmentProfile{
	{
		ID:             "acne",
		Description:    "A common skin condition characterized by pimples, blackheads, and inflammation",
		PrimaryOils:    []string{"Sesame Oil", "Moringa Oil", "Tea Tree Oil"},
		SupportingOils: []string{"Argan Oil", "Lavender Oil", "Rosemary Oil"},
		Application:    "Evening ritual only",
		Duration:       "4-6 weeks",
		Frequency:      "Daily",
		Precautions:    "Always dilute essential oils with carrier oils. Perform patch test before full application.",
		Benefits:       "Purifies skin, regulates sebum production, reduces inflammation, prevents future breakouts",
		Measurements: map[string]string{
			"Sesame Oil":   "2-3 drops (2-6ml)",
			"Moringa Oil":  "2-3 drops (2-6ml)",
			"Tea Tree Oil": "1-2 drops (1-4ml) diluted",
			"Argan Oil":    "1-2 drops (1-4ml)",
			"Lavender Oil": "1 drop (1-2ml)",
			"Rosemary Oil": "1 drop (1-2ml)",
		},
	},
	{
		ID:          "dry_skin",
		Description: "Skin lacking moisture, often feeling tight and flaky",
		PrimaryOils: []string{"Sweet Almond Oil"},
		Application: "Evening ritual only",
		Duration:    "Ongoing",
		Frequency:   "Daily",
		Precautions: "Use gentle application. Can be used more frequently if needed.",
		Benefits:    "Deep hydration, improved skin barrier, reduced flakiness, enhanced skin tone",
		Measurements: map[string]string{
			"Sweet Almond Oil": "Apply a small amount to face and body after bathing (e.g., 3-4 drops for face)",
		},
	},
	{
		ID:             "sensitive_skin",
		Description:    "Skin prone to irritation, redness, and reactions",
		PrimaryOils:    []string{"Sesame Oil", "Sweet Almond Oil"},
		SupportingOils: []string{"Coconut Oil"},
		Application:    "Evening ritual only",
		Duration:       "Ongoing",
		Frequency:      "Daily",
		Precautions:    "Always perform patch test. Start with minimal amounts.",
		Benefits:       "Reduced irritation, improved skin barrier, gentle cleansing",
		Measurements: map[string]string{
			"Sesame Oil":       "1-2 drops (1-4ml)",
			"Sweet Almond Oil": "1-2 drops (1-4ml)",
			"Coconut Oil":      "1-2 drops (1-4ml)",
		},
	},
	{
		ID:             "aging_skin",
		Description:    "Concerns related to fine lines, wrinkles, and skin aging",
		PrimaryOils:    []string{"Frankincense Oil", "Rose Oil"},
		SupportingOils: []string{"Sweet Almond Oil"},
		Application:    "Evening ritual only",
		Duration:       "Ongoing",
		Frequency:      "Daily",
		Precautions:    "Use gentle application. Avoid eye area unless specified. Dilute essential oils with carrier oils.",
		Benefits:       "Reduced fine lines, improved skin elasticity, enhanced collagen production",
		Measurements: map[string]string{
			"Frankincense Oil": "2-3 drops diluted in 1 tsp Sweet Almond Oil, apply to face",
			"Rose Oil":         "1-2 drops (1-4ml)",
		},
	},
	{
		ID:             "hair_loss",
		Description:    "Thinning hair or balding concerns",
		PrimaryOils:    []string{"Garden Cress Oil", "Rosemary Oil", "Black Seed Oil"},
		SupportingOils: []string{"Sesame Oil", "Frankincense Oil", "Argan Oil"},
		Application:    "Evening ritual only",
		Duration:       "3-6 months",
		Frequency:      "2-3 times per week",
		Precautions:    "Massage gently into scalp. Avoid excessive pulling.",
		Benefits:       "Stimulated hair growth, improved scalp circulation, strengthened hair follicles",
		Measurements: map[string]string{
			"Garden Cress Oil": "4-5 drops (4-10ml)",
			"Rosemary Oil":     "2-3 drops (2-6ml)",
			"Black Seed Oil":   "2-3 drops (2-6ml)",
			"Sesame Oil":       "2-3 drops (2-6ml)",
			"Frankincense Oil": "1-2 drops (1-4ml)",
			"Argan Oil":        "2-3 drops (2-6ml)",
		},
	},
	{
		ID:             "dandruff",
		Description:    "Flaky, itchy scalp condition",
		PrimaryOils:    []string{"Sesame Oil", "Garden Cress Oil", "Tea Tree Oil"},
		SupportingOils: []string{"Moringa Oil", "Lavender Oil", "Argan Oil", "Rosemary Oil"},
		Application:    "Evening ritual only",
		Duration:       "4-8 weeks",
		Frequency:      "2-3 times per week",
		Precautions:    "Massage gently. Rinse thoroughly.",
		Benefits:       "Reduced flaking, improved scalp health, balanced moisture",
		Measurements: map[string]string{
			"Sesame Oil":       "3-4 drops (3-8ml)",
			"Garden Cress Oil": "3-4 drops (3-8ml)",
			"Tea Tree Oil":     "2-3 drops (2-6ml) diluted",
			"Moringa Oil":      "2-3 drops (2-6ml)",
			"Lavender Oil":     "1-2 drops (1-4ml)",
			"Argan Oil":        "2-3 drops (2-6ml)",
			"Rosemary Oil":     "1-2 drops (1-4ml)",
		},
	},
	{
		ID:             "muscle_pain_relief",
		Description:    "Relieving sore muscles and joint pain",
		PrimaryOils:    []string{"Peppermint Oil"},
		SupportingOils: []string{"Sweet Almond Oil"},
		Application:    "Evening ritual only",
		Duration:       "As needed",
		Frequency:      "As needed",
		Precautions:    "Dilute essential oils with carrier oils. Avoid if sensitive to menthol.",
		Benefits:       "Provides cooling relief, reduces inflammation",
		Measurements: map[string]string{
			"Peppermint Oil":   "2-3 drops",
			"Sweet Almond Oil": "1 tsp",
		},
	},
	{
		ID:             "relaxation",
		Description:    "Promoting relaxation and stress relief",
		PrimaryOils:    []string{"Lavender Oil"},
		SupportingOils: []string{"Sweet Almond Oil"},
		Application:    "Evening ritual only",
		Duration:       "As needed",
		Frequency:      "As needed",
		Precautions:    "Dilute essential oils with carrier oils. Can be used in diffusers or baths.",
		Benefits:       "Calms mind and body, promotes better sleep",
		Measurements: map[string]string{
			"Lavender Oil":     "2-3 drops in diffuser or diluted in bath",
			"Sweet Almond Oil": "1 tbsp for massage oil",
		},
	},
}
