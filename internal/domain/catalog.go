package domain

// CatalogEntry is one selectable mood, intent or category.
type CatalogEntry struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Moods offered by the wizard.
var Moods = []CatalogEntry{
	{Value: "noir", Label: "Noir", Description: "Shadowy, moody, high-contrast"},
	{Value: "cyberpunk", Label: "Cyberpunk", Description: "Neon, tech, rainy, futuristic"},
	{Value: "minimalist", Label: "Minimalist", Description: "Clean, spacious, purposeful"},
	{Value: "ethereal", Label: "Ethereal", Description: "Light, airy, dreamlike"},
	{Value: "brutalist", Label: "Brutalist", Description: "Raw, heavy, concrete, bold"},
	{Value: "vintage", Label: "Vintage", Description: "Faded, nostalgic, warm"},
	{Value: "biophilic", Label: "Biophilic", Description: "Natural, organic, green"},
	{Value: "high-fashion", Label: "High Fashion", Description: "Glossy, sharp, avant-garde"},
}

// Intents offered by the wizard.
var Intents = []CatalogEntry{
	{Value: "commercial", Label: "Commercial", Description: "Selling a product or lifestyle"},
	{Value: "artistic", Label: "Artistic", Description: "Personal expression and concept"},
	{Value: "educational", Label: "Educational", Description: "Clear communication of information"},
	{Value: "cinematic", Label: "Cinematic", Description: "Storytelling and atmosphere"},
}

// GoalCategories lists the categories available per goal.
var GoalCategories = map[Goal][]CatalogEntry{
	GoalVideo: {
		{Value: "ad", Label: "Advertisement"},
		{Value: "trailer", Label: "Movie Trailer"},
		{Value: "social", Label: "Social Media Reel"},
		{Value: "documentary", Label: "Documentary"},
	},
	GoalImage: {
		{Value: "portrait", Label: "Portrait"},
		{Value: "product", Label: "Product Photography"},
		{Value: "architecture", Label: "Architecture"},
		{Value: "fashion", Label: "Fashion"},
	},
	GoalGame: {
		{Value: "rpg", Label: "Open World RPG"},
		{Value: "puzzle", Label: "Abstract Puzzle"},
		{Value: "horror", Label: "Psychological Horror"},
		{Value: "sim", Label: "Cozy Simulation"},
	},
	GoalTool: {
		{Value: "productivity", Label: "Productivity App"},
		{Value: "creative", Label: "Creative Tool"},
		{Value: "education", Label: "Learning Platform"},
		{Value: "fintech", Label: "Financial Management"},
	},
}

// IsIntent reports whether v is a known intent.
func IsIntent(v string) bool {
	return containsValue(Intents, v)
}

// IsMood reports whether v is a known mood.
func IsMood(v string) bool {
	return containsValue(Moods, v)
}

// IsCategory reports whether category belongs to goal.
func IsCategory(goal Goal, category string) bool {
	return containsValue(GoalCategories[goal], category)
}

func containsValue(entries []CatalogEntry, v string) bool {
	for _, e := range entries {
		if e.Value == v {
			return true
		}
	}
	return false
}
