package promptgen

import (
	"fmt"
	"strings"

	"vibecraft/internal/domain"
)

// rule renders one prompt variant for a goal. Only the image rule reads the
// variant index.
type rule func(c domain.Choices, variant int) string

var rules = map[domain.Goal]rule{
	domain.GoalImage: imagePrompt,
	domain.GoalVideo: videoPrompt,
	domain.GoalGame:  gamePrompt,
	domain.GoalTool:  toolPrompt,
}

// resolve returns value unless it is empty.
func resolve(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// above picks high when value is strictly greater than threshold.
func above(value, threshold int, high, low string) string {
	if value > threshold {
		return high
	}
	return low
}

// imageAspectRatio is 3:2 for the 35mm storytelling lens, square otherwise.
func imageAspectRatio(c domain.Choices) string {
	if c.Detail("lens") == "35mm" {
		return "3:2"
	}
	return "1:1"
}

func imagePrompt(c domain.Choices, variant int) string {
	const (
		primaryFallback   = "minimalist"
		secondaryFallback = "ethereal"
		subjectFallback   = "an abstract concept"
		lensFallback      = "85mm"
		lightingFallback  = "natural ambient"
	)
	moodWord := pick(resolve(c.Mood(0), primaryFallback), variant)
	secondary := resolve(c.Mood(1), secondaryFallback)

	complexity := above(c.Sliders.Complexity, 70, "exquisitely intricate, micro-detailed", "clean-cut, simplified")
	sharpness := above(c.Sliders.Sharpness, 70, "hyper-defined, 8k resolution", "soft focus, atmospheric blur")
	boldness := above(c.Sliders.Boldness, 70, "aggressive composition", "symmetrical balance")

	return fmt.Sprintf(
		"[ARCHITECTURAL %s]: %s perspective. SUBJECT: %s. AESTHETIC: %s with %s undertones. OPTICS: %s, %s. LIGHTING: %s. COLOR: Muted palette. %s, %s. --ar %s --v 6.1",
		strings.ToUpper(c.Intent),
		strings.ToUpper(c.Category),
		resolve(c.Detail("subject"), subjectFallback),
		moodWord,
		secondary,
		resolve(c.Detail("lens"), lensFallback),
		complexity,
		resolve(c.Detail("lighting_setup"), lightingFallback),
		sharpness,
		boldness,
		imageAspectRatio(c),
	)
}

func videoPrompt(c domain.Choices, _ int) string {
	motion := above(c.Sliders.Energy, 60, "dynamic handheld movement", "slow dolly zoom")
	lighting := "high-key clarity"
	if fog := c.Detail("fog_density"); fog != "" {
		lighting = "layered " + fog + " fog"
	}
	return fmt.Sprintf(
		"SEQUENCE: %s. VISUALS: %s. ATMOSPHERE: %s and %s. MOTION: %s. PACING: %s. LIGHTING: %s. RENDER: Anamorphic lenses, 24fps, high dynamic range.",
		strings.ToUpper(c.Category),
		resolve(c.Detail("subject"), "a cinematic sequence"),
		resolve(c.Mood(0), "cinematic"),
		resolve(c.Mood(1), "dramatic"),
		motion,
		resolve(c.Detail("pacing"), "calculated"),
		lighting,
	)
}

func gamePrompt(c domain.Choices, _ int) string {
	const moodFallback = "atmospheric"
	moods := moodFallback
	if len(c.Moods) > 0 {
		moods = strings.Join(c.Moods, " x ")
	}
	return fmt.Sprintf(
		"BLUEPRINT: A %s %s experience. CORE MECHANIC: %s. WORLD-BUILDING: %s. ART DIRECTION: %s. SHADERS: %s lighting models. TECH: Unreal Engine 5 Nanite rendering.",
		moods,
		c.Category,
		resolve(c.Detail("core_loop"), "Exploration"),
		resolve(c.Detail("subject"), "an uncharted world"),
		above(c.Sliders.Style, 50, "Stylized Illustration", "Hyper-Realistic PBR"),
		resolve(c.Mood(0), moodFallback),
	)
}

func toolPrompt(c domain.Choices, _ int) string {
	return fmt.Sprintf(
		"UX BLUEPRINT: %s. DOMAIN: %s. ARCHITECTURE: %s. FLOW: Seamless %s integration. TARGET: %s. DESIGN SYSTEM: %s.",
		resolve(c.Detail("subject"), "a focused utility"),
		c.Category,
		above(c.Sliders.Complexity, 50, "Pro Grade", "Utility Focus"),
		c.Category,
		resolve(c.Detail("user_level"), "General User"),
		above(c.Sliders.Style, 50, "Custom Experimental", "Atomic Design"),
	)
}
