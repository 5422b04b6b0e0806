package phaseswap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cmdTestA struct{ V int }
type cmdTestB struct{ S string }

func TestCommands_EntityLifecycle(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	eid := cmd.AddEntity(cmdTestA{V: 1})
	assert.Nil(t, cmd.GetAllComponents(eid), "queued entities don't exist yet")

	app.FlushCommands()
	assert.Equal(t, []any{cmdTestA{V: 1}}, cmd.GetAllComponents(eid))

	cmd.AddComponents(eid, &cmdTestB{S: "b"})
	app.FlushCommands()
	assert.ElementsMatch(t, []any{cmdTestA{V: 1}, cmdTestB{S: "b"}}, cmd.GetAllComponents(eid))

	cmd.RemoveComponents(eid, cmdTestA{})
	app.FlushCommands()
	assert.Equal(t, []any{cmdTestB{S: "b"}}, cmd.GetAllComponents(eid))

	cmd.RemoveEntity(eid)
	cmd.AddComponents(eid, cmdTestA{V: 2})
	app.FlushCommands()
	assert.Nil(t, cmd.GetAllComponents(eid), "components queued for a removed entity are dropped")
}

func TestCommands_AddEntityReservesIds(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	first := cmd.AddEntity(cmdTestA{})
	second := cmd.AddEntity(cmdTestA{})
	assert.NotEqual(t, first, second)

	app.FlushCommands()
	count := 0
	MakeQuery1[cmdTestA](cmd).Map(func(EntityId, *cmdTestA) bool {
		count++
		return true
	})
	assert.Equal(t, 2, count)
}

func TestCommands_ChangeState(t *testing.T) {
	const (
		stateA State = iota
		stateB
		stateC
	)
	app := NewApp().UseStates(stateA, stateC)

	var entered []State
	for _, s := range []State{stateA, stateB, stateC} {
		s := s
		app.UseSystem(System(func() { entered = append(entered, s) }).InState(OnEnter(s)))
	}
	app.UseSystem(System(func(cmd *Commands) { cmd.ChangeState(stateB) }).InState(OnExecute(stateA)))

	app.Start()
	require.True(t, app.Step())
	assert.Equal(t, stateB, app.State())
	assert.Equal(t, []State{stateA, stateB}, entered)
}

func TestCommands_AddResources(t *testing.T) {
	app := NewApp()
	res := &cmdTestA{V: 3}
	app.Commands().AddResources(res)

	got, ok := Resource[cmdTestA](app)
	require.True(t, ok)
	assert.Same(t, res, got)
	assert.True(t, app.hasResource(&cmdTestA{}))
	assert.False(t, app.hasResource(&cmdTestB{}))
}
