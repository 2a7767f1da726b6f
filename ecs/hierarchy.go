package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/ldtkscene/ecs/component"
)

var ErrHierarchyCycle = errors.New("ecs: child is an ancestor of parent")

// AddChild makes child a child of parent, detaching it from any previous
// parent. Children keep insertion order.
func AddChild(w *World, parent, child Entity) error {
	if !w.IsAlive(parent) || !w.IsAlive(child) {
		return fmt.Errorf("add child %s to %s: %w", child, parent, component.ErrEntityNotAlive)
	}
	for p, ok := parent, true; ok; p, ok = Parent(w, p) {
		if p == child {
			return fmt.Errorf("add child %s to %s: %w", child, parent, ErrHierarchyCycle)
		}
	}
	w.detach(child)
	w.parents[child.id()] = parent
	w.children[parent.id()] = append(w.children[parent.id()], child)
	return nil
}

// Parent returns e's parent.
func Parent(w *World, e Entity) (Entity, bool) {
	if !w.IsAlive(e) {
		return 0, false
	}
	p, ok := w.parents[e.id()]
	if !ok || !w.IsAlive(p) {
		return 0, false
	}
	return p, true
}

// Children returns a copy of e's children in insertion order.
func Children(w *World, e Entity) []Entity {
	if !w.IsAlive(e) {
		return nil
	}
	kids := w.children[e.id()]
	out := make([]Entity, 0, len(kids))
	for _, c := range kids {
		if w.IsAlive(c) {
			out = append(out, c)
		}
	}
	return out
}

// DestroyRecursive destroys e and every descendant. It returns how many
// entities were destroyed.
func DestroyRecursive(w *World, e Entity) int {
	if !w.IsAlive(e) {
		return 0
	}
	n := DestroyChildren(w, e)
	if DestroyEntity(w, e) {
		n++
	}
	return n
}

// DestroyChildren destroys every descendant of e but keeps e itself.
func DestroyChildren(w *World, e Entity) int {
	n := 0
	for _, c := range Children(w, e) {
		n += DestroyRecursive(w, c)
	}
	return n
}

func (w *World) detach(child Entity) {
	p, ok := w.parents[child.id()]
	if !ok {
		return
	}
	delete(w.parents, child.id())
	siblings := w.children[p.id()]
	for i, s := range siblings {
		if s == child {
			w.children[p.id()] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
}
