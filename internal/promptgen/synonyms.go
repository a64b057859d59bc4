package promptgen

// moodSynonyms rotates the wording of the primary mood across variants.
var moodSynonyms = map[string][]string{
	"noir":         {"melancholic shadowplay", "chiaroscuro lighting", "hard-boiled urbanism", "obsidian contrast"},
	"cyberpunk":    {"chromatic aberration", "neon-soaked hyper-reality", "retro-futuristic grime", "synthetic haze"},
	"minimalist":   {"austere geometry", "negative space mastery", "reductionist aesthetic", "elemental clarity"},
	"ethereal":     {"opalescent glow", "liminal dreamscape", "diffused celestial light", "soft-focus wonder"},
	"brutalist":    {"monolithic concrete", "raw tectonic force", "geometric imposition", "unyielding structure"},
	"vintage":      {"analog grain", "sepia-washed nostalgia", "expired film stock", "chromatic warmth"},
	"biophilic":    {"verdant organicism", "botanical fusion", "chlorophyll-infused architecture", "photosynthetic"},
	"high-fashion": {"editorial sharpness", "avant-garde silhouetting", "glossy couture", "runway precision"},
}

// pick returns the synonym for mood at index, cycling through its table.
// Moods without a table stand in for themselves.
func pick(mood string, index int) string {
	pool, ok := moodSynonyms[mood]
	if !ok || len(pool) == 0 {
		pool = []string{mood}
	}
	if index < 0 {
		index = -index
	}
	return pool[index%len(pool)]
}
