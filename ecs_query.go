package phaseswap

import (
	"reflect"
)

// Queries visit every entity that has all of the listed components. Map stops
// early when the callback returns false. Single reports a match only when
// exactly one entity qualifies.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]       { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B] { return Query2[A, B]{ecs: cmd.app.ecs} }

func (q Query1[A]) Map(m func(EntityId, *A) bool) {
	id1 := identifyComponent[A](q.ecs)

	for _, arch := range q.ecs.archetypes {
		data1, ok := arch.componentData[id1]
		if !ok {
			continue
		}
		comps1 := data1.([]A)

		for entityId, r := range arch.entities {
			if !m(entityId, &comps1[r]) {
				return
			}
		}
	}
}

func (q Query1[A]) Single() (EntityId, *A, bool) {
	var (
		eid   EntityId
		a     *A
		count int
	)
	q.Map(func(id EntityId, ca *A) bool {
		count++
		eid, a = id, ca
		return count < 2
	})
	if count != 1 {
		return 0, nil, false
	}
	return eid, a, true
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool) {
	id1 := identifyComponent[A](q.ecs)
	id2 := identifyComponent[B](q.ecs)

	for _, arch := range q.ecs.archetypes {
		data1, ok1 := arch.componentData[id1]
		data2, ok2 := arch.componentData[id2]
		if !ok1 || !ok2 {
			continue
		}
		comps1 := data1.([]A)
		comps2 := data2.([]B)

		for entityId, r := range arch.entities {
			if !m(entityId, &comps1[r], &comps2[r]) {
				return
			}
		}
	}
}

func (q Query2[A, B]) Single() (EntityId, *A, *B, bool) {
	var (
		eid   EntityId
		a     *A
		b     *B
		count int
	)
	q.Map(func(id EntityId, ca *A, cb *B) bool {
		count++
		eid, a, b = id, ca, cb
		return count < 2
	})
	if count != 1 {
		return 0, nil, nil, false
	}
	return eid, a, b, true
}

func identifyComponent[A any](ecs *Ecs) componentId {
	return ecs.getComponentId(reflect.TypeOf((*A)(nil)).Elem())
}
