package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/ldtkscene/ecs/component"
)

func TestHierarchy(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "children_keep_insertion_order",
			run: func(t *testing.T) {
				w := NewWorld()
				root := CreateEntity(w)
				a, b, c := CreateEntity(w), CreateEntity(w), CreateEntity(w)
				for _, child := range []Entity{b, a, c} {
					if err := AddChild(w, root, child); err != nil {
						t.Fatal(err)
					}
				}
				got := Children(w, root)
				if len(got) != 3 || got[0] != b || got[1] != a || got[2] != c {
					t.Fatalf("unexpected children order %v", got)
				}
				if p, ok := Parent(w, a); !ok || p != root {
					t.Fatalf("expected root parent, got %v ok=%v", p, ok)
				}
			},
		},
		{
			name: "reparent_detaches",
			run: func(t *testing.T) {
				w := NewWorld()
				p1, p2, child := CreateEntity(w), CreateEntity(w), CreateEntity(w)
				if err := AddChild(w, p1, child); err != nil {
					t.Fatal(err)
				}
				if err := AddChild(w, p2, child); err != nil {
					t.Fatal(err)
				}
				if len(Children(w, p1)) != 0 {
					t.Fatal("old parent still lists child")
				}
				if p, _ := Parent(w, child); p != p2 {
					t.Fatalf("expected new parent %v, got %v", p2, p)
				}
			},
		},
		{
			name: "cycle_rejected",
			run: func(t *testing.T) {
				w := NewWorld()
				a, b := CreateEntity(w), CreateEntity(w)
				if err := AddChild(w, a, b); err != nil {
					t.Fatal(err)
				}
				if err := AddChild(w, b, a); !errors.Is(err, ErrHierarchyCycle) {
					t.Fatalf("expected ErrHierarchyCycle, got %v", err)
				}
				if err := AddChild(w, a, a); !errors.Is(err, ErrHierarchyCycle) {
					t.Fatalf("expected ErrHierarchyCycle for self, got %v", err)
				}
			},
		},
		{
			name: "dead_entities_rejected",
			run: func(t *testing.T) {
				w := NewWorld()
				a, b := CreateEntity(w), CreateEntity(w)
				DestroyEntity(w, b)
				if err := AddChild(w, a, b); !errors.Is(err, component.ErrEntityNotAlive) {
					t.Fatalf("expected ErrEntityNotAlive, got %v", err)
				}
			},
		},
		{
			name: "destroy_recursive",
			run: func(t *testing.T) {
				w := NewWorld()
				keep := CreateEntity(w)
				root := CreateEntity(w)
				mid := CreateEntity(w)
				leaf1, leaf2 := CreateEntity(w), CreateEntity(w)
				for _, link := range [][2]Entity{{root, mid}, {mid, leaf1}, {mid, leaf2}} {
					if err := AddChild(w, link[0], link[1]); err != nil {
						t.Fatal(err)
					}
				}
				if n := DestroyRecursive(w, root); n != 4 {
					t.Fatalf("expected 4 destroyed, got %d", n)
				}
				for _, e := range []Entity{root, mid, leaf1, leaf2} {
					if IsAlive(w, e) {
						t.Fatalf("%v still alive", e)
					}
				}
				if !IsAlive(w, keep) || len(Entities(w)) != 1 {
					t.Fatalf("unrelated entity affected: %v", Entities(w))
				}
			},
		},
		{
			name: "destroy_children_keeps_parent",
			run: func(t *testing.T) {
				w := NewWorld()
				root, a, b := CreateEntity(w), CreateEntity(w), CreateEntity(w)
				_ = AddChild(w, root, a)
				_ = AddChild(w, a, b)
				if n := DestroyChildren(w, root); n != 2 {
					t.Fatalf("expected 2 destroyed, got %d", n)
				}
				if !IsAlive(w, root) || len(Children(w, root)) != 0 {
					t.Fatal("root should survive with no children")
				}
			},
		},
		{
			name: "destroy_entity_orphans_children",
			run: func(t *testing.T) {
				w := NewWorld()
				root, child := CreateEntity(w), CreateEntity(w)
				_ = AddChild(w, root, child)
				DestroyEntity(w, root)
				if !IsAlive(w, child) {
					t.Fatal("child should survive a non-recursive destroy")
				}
				if _, ok := Parent(w, child); ok {
					t.Fatal("child should no longer have a parent")
				}
				reused := CreateEntity(w)
				if len(Children(w, reused)) != 0 {
					t.Fatal("reused slot inherited children")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestSpawn(t *testing.T) {
	w := NewWorld()
	ki := component.NewComponentKind[int]()
	ks := component.NewComponentKind[string]()

	parent := CreateEntity(w)
	e, err := SpawnChild(w, parent, With(ki, 7), With(ks, "seven"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := Get(w, e, ki); !ok || *v != 7 {
		t.Fatalf("expected 7, got %v ok=%v", v, ok)
	}
	if v, ok := Get(w, e, ks); !ok || *v != "seven" {
		t.Fatalf("expected seven, got %v ok=%v", v, ok)
	}
	if p, ok := Parent(w, e); !ok || p != parent {
		t.Fatal("spawned child not attached")
	}

	before := len(Entities(w))
	_, err = Spawn(w, With(ki, 1), With(component.ComponentKind[string]{}, "bad"))
	if !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if len(Entities(w)) != before {
		t.Fatal("failed spawn left an entity behind")
	}
}

type countingSystem struct {
	name  string
	order *[]string
}

func (s countingSystem) Update(*World) { *s.order = append(*s.order, s.name) }

func TestSchedulerOrderAndEvents(t *testing.T) {
	var order []string
	s := NewScheduler(countingSystem{"a", &order}, nil, countingSystem{"b", &order})
	s.Add(countingSystem{"c", &order})

	w := NewWorld()
	s.Update(w)
	s.Update(w)
	if got := len(order); got != 6 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("unexpected order %v", order)
	}
	if s.Ticks() != 2 || len(s.Systems()) != 3 {
		t.Fatalf("ticks=%d systems=%d", s.Ticks(), len(s.Systems()))
	}

	w.Events().Push(Event{Type: "one"})
	w.Events().Push(Event{Type: "two"})
	if w.Events().Len() != 2 {
		t.Fatal("expected 2 queued events")
	}
	evts := w.Events().Drain()
	if len(evts) != 2 || evts[0].Type != "one" || evts[1].Type != "two" {
		t.Fatalf("unexpected events %v", evts)
	}
	if w.Events().Drain() != nil {
		t.Fatal("drain should empty the queue")
	}
}
