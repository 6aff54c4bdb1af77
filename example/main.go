package main

import (
	"fmt"

	"github.com/mgnsk/poslist"
)

func main() {
	var l poslist.List[string]

	// Insertions return stable handles to the inserted slot.
	world := l.AddLast("world")
	hello := l.AddFirst("hello")
	l.AddAfter(hello, "there,")

	// Handles survive unrelated mutations.
	l.Set(world, "world!")

	it := l.Elements()
	for it.HasNext() {
		fmt.Println(it.Next())
	}

	// Removing a slot permanently invalidates its handle.
	l.Remove(world)

	defer func() {
		fmt.Println(recover())
	}()

	l.Remove(world)
}
