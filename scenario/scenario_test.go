package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/superheroes/core/events"
	"github.com/kilianp07/superheroes/core/model"
	"github.com/kilianp07/superheroes/core/roster"
)

type lines []string

func (l *lines) Println(s string) { *l = append(*l, s) }

func demoRoster(t *testing.T, n events.Notifier) *roster.Roster {
	t.Helper()
	rs := roster.New()
	require.NoError(t, rs.Add(model.NewTechHero(model.Identity{
		Name:           "Batman",
		SecretIdentity: "Bruce Wayne",
		Powers:         []string{"martial arts", "detective skills", "intimidation"},
	}, []model.Gadget{
		{Name: "Batarang", Description: "Throwing weapon"},
		{Name: "Grappling Hook", Description: "For scaling buildings"},
	}, n)))
	require.NoError(t, rs.Add(model.NewMutantHero(model.Identity{
		Name:           "Wolverine",
		SecretIdentity: "Logan",
		Powers:         []string{"regeneration", "adamantium claws", "enhanced senses"},
	}, 9, n)))
	return rs
}

func TestDefaultScenario(t *testing.T) {
	rec := &events.Recorder{}
	var out lines
	sc := Default()
	assert.Equal(t, "demo", sc.Name)

	res, err := Run(demoRoster(t, rec), sc, &out)
	require.NoError(t, err)
	assert.True(t, res.OK(), "mismatches: %v", res.Mismatches)
	assert.Equal(t, map[string]int{"Batman": 100, "Wolverine": 75}, res.Energy)
	// 3 + 3 hero actions, 2 gadgets, 5 claws
	assert.Equal(t, 13, res.Actions)
	assert.Len(t, rec.Notifications, 13)
	assert.Equal(t, "Wolverine's energy: 75%", out[len(out)-1])
	assert.Contains(t, out, "Testing mutant efficiency:")
}

func TestRunReportsMismatches(t *testing.T) {
	sc := &Scenario{
		Name: "mismatch",
		Steps: []Step{
			{Hero: "Wolverine", Action: ActionUsePower, Index: 0, Repeat: 2},
			{Hero: "Batman", Action: ActionUsePower, Index: 9},
		},
		Expected: Expected{Energy: map[string]int{"Wolverine": 95, "Batman": 100}},
	}
	var out lines
	res, err := Run(demoRoster(t, nil), sc, &out)
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Equal(t, []string{"Wolverine: expected energy 95, got 90"}, res.Mismatches)
}

func TestRunRefusedActionsAreNotErrors(t *testing.T) {
	rec := &events.Recorder{}
	sc := &Scenario{
		Name: "refused",
		Steps: []Step{
			{Hero: "Batman", Action: ActionUsePower, Index: 0, Repeat: 12},
			{Hero: "Batman", Action: ActionUseGadget, Gadget: "Nonexistent"},
		},
	}
	res, err := Run(demoRoster(t, rec), sc, &lines{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Energy["Batman"])

	kinds := map[events.Kind]int{}
	for _, n := range rec.Notifications {
		kinds[n.Kind]++
	}
	assert.Equal(t, 10, kinds[events.KindPowerUsed])
	assert.Equal(t, 2, kinds[events.KindExhausted])
	assert.Equal(t, 1, kinds[events.KindInvalidSelection])
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		sc      Scenario
		wantErr error
	}{
		"unknown hero":   {Scenario{Steps: []Step{{Hero: "Robin", Action: ActionRest}}}, ErrUnknownHero},
		"unknown action": {Scenario{Steps: []Step{{Hero: "Batman", Action: "fly"}}}, ErrUnknownAction},
		"no gadgets":     {Scenario{Steps: []Step{{Hero: "Wolverine", Action: ActionUseGadget, Gadget: "x"}}}, ErrNoGadgets},
		"expected hero": {Scenario{
			Steps:    []Step{{Action: ActionSay}},
			Expected: Expected{Energy: map[string]int{"Robin": 1}},
		}, ErrUnknownHero},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			rec := &events.Recorder{}
			_, err := Run(demoRoster(t, rec), &c.sc, &lines{})
			assert.ErrorIs(t, err, c.wantErr)
			assert.Empty(t, rec.Notifications, "nothing runs when validation fails")
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: rest
steps:
  - hero: Batman
    action: use_power
    repeat: 4
  - hero: Batman
    action: rest
expected:
  energy:
    Batman: 90
`), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rest", sc.Name)
	require.Len(t, sc.Steps, 2)
	assert.Equal(t, 4, sc.Steps[0].Repeat)

	res, err := Run(demoRoster(t, nil), sc, &lines{})
	require.NoError(t, err)
	assert.True(t, res.OK(), "mismatches: %v", res.Mismatches)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("name: empty\n"))
	assert.Error(t, err)
	_, err = Parse([]byte("steps: [oops"))
	assert.Error(t, err)
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
