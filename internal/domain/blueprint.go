package domain

import "time"

// Blueprint is a generated prompt record. It is created once per generate
// action and never mutated afterwards; stores only append and delete it.
type Blueprint struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Choices   Choices         `json:"choices"`
	V1        string          `json:"v1"`
	V2        string          `json:"v2"`
	V3        string          `json:"v3"`
	Extras    BlueprintExtras `json:"extras"`
}

// BlueprintExtras carries metadata derived alongside the variants.
type BlueprintExtras struct {
	NegativePrompt string `json:"negativePrompt"`
	AspectRatio    string `json:"aspectRatio"`
	BlueprintRef   string `json:"blueprintRef"`
	RenderConfig   string `json:"renderConfig"`
}

// Clone returns a copy that shares no maps or slices with b.
func (b Blueprint) Clone() Blueprint {
	out := b
	out.Choices = b.Choices.Clone()
	return out
}

// Variants returns v1, v2 and v3 in order.
func (b Blueprint) Variants() []string {
	return []string{b.V1, b.V2, b.V3}
}
