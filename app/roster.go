package app

import (
	"fmt"

	"github.com/kilianp07/superheroes/config"
	"github.com/kilianp07/superheroes/core/events"
	"github.com/kilianp07/superheroes/core/model"
	"github.com/kilianp07/superheroes/core/roster"
)

// BuildHero creates the hero declared by def. Every notification it emits goes to n.
func BuildHero(def config.HeroDef, n events.Notifier) (model.Hero, error) {
	id := model.Identity{
		Name:           def.Name,
		SecretIdentity: def.SecretIdentity,
		Powers:         def.Powers,
		OriginStory:    def.OriginStory,
	}
	switch def.Kind {
	case config.KindBase, "":
		return model.NewBaseHero(id, n), nil
	case config.KindTech:
		gadgets := make([]model.Gadget, len(def.Gadgets))
		for i, g := range def.Gadgets {
			gadgets[i] = model.Gadget{Name: g.Name, Description: g.Description}
		}
		return model.NewTechHero(id, gadgets, n), nil
	case config.KindMutant:
		return model.NewMutantHero(id, def.MutationLevel, n), nil
	default:
		return nil, fmt.Errorf("hero %s: unknown kind %q", def.Name, def.Kind)
	}
}

// BuildRoster creates every declared hero in order.
func BuildRoster(defs []config.HeroDef, n events.Notifier) (*roster.Roster, error) {
	rs := roster.New()
	for _, def := range defs {
		h, err := BuildHero(def, n)
		if err != nil {
			return nil, err
		}
		if err := rs.Add(h); err != nil {
			return nil, err
		}
	}
	return rs, nil
}
