package config

import (
	"fmt"
	"strings"
)

// Hero kinds accepted in HeroDef.Kind.
const (
	KindBase   = "base"
	KindTech   = "tech"
	KindMutant = "mutant"
)

// GadgetDef declares a gadget of a tech hero.
type GadgetDef struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HeroDef declares one roster hero.
type HeroDef struct {
	Kind           string      `json:"kind"`
	Name           string      `json:"name"`
	SecretIdentity string      `json:"secret_identity"`
	Powers         []string    `json:"powers"`
	OriginStory    string      `json:"origin_story"`
	Gadgets        []GadgetDef `json:"gadgets"`
	MutationLevel  int         `json:"mutation_level"`
}

// SetDefaults treats an empty kind as a base hero.
func (h *HeroDef) SetDefaults() {
	h.Kind = strings.ToLower(strings.TrimSpace(h.Kind))
	if h.Kind == "" {
		h.Kind = KindBase
	}
}

// Validate checks the hero can be built.
func (h HeroDef) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("hero name is required")
	}
	switch h.Kind {
	case KindBase, KindTech, KindMutant:
	default:
		return fmt.Errorf("hero %s: unknown kind %q", h.Name, h.Kind)
	}
	if h.Kind != KindTech && len(h.Gadgets) > 0 {
		return fmt.Errorf("hero %s: only tech heroes carry gadgets", h.Name)
	}
	return nil
}

// ValidateRoster validates each hero and rejects duplicate names.
func ValidateRoster(heroes []HeroDef) error {
	seen := make(map[string]bool, len(heroes))
	for i, h := range heroes {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("heroes[%d]: %w", i, err)
		}
		if seen[h.Name] {
			return fmt.Errorf("heroes[%d]: duplicate hero name %s", i, h.Name)
		}
		seen[h.Name] = true
	}
	return nil
}

// DefaultRoster returns the two demonstration heroes.
func DefaultRoster() []HeroDef {
	return []HeroDef{
		{
			Kind:           KindTech,
			Name:           "Batman",
			SecretIdentity: "Bruce Wayne",
			Powers:         []string{"martial arts", "detective skills", "intimidation"},
			OriginStory:    "Witnessed parents' murder, vowed to fight crime",
			Gadgets: []GadgetDef{
				{Name: "Batarang", Description: "Throwing weapon"},
				{Name: "Grappling Hook", Description: "For scaling buildings"},
				{Name: "Batmobile", Description: "High-tech vehicle"},
			},
		},
		{
			Kind:           KindMutant,
			Name:           "Wolverine",
			SecretIdentity: "Logan",
			Powers:         []string{"regeneration", "adamantium claws", "enhanced senses"},
			OriginStory:    "Weapon X experiment",
			MutationLevel:  9,
		},
	}
}
