package poslist

// node is a list node. Interior nodes carry their owning list so that the
// validation gate can tell live handles apart from removed or foreign ones.
// Sentinels leave list nil and therefore never validate.
type node[E any] struct {
	list       *List[E]
	element    E
	next, prev *node[E]
}

// Position is an opaque handle to one slot of a List. It is comparable and
// carries no structural knowledge. A position is obtained from an insertion
// or a navigation call and stays valid until the slot it names is removed.
//
// The zero Position is invalid.
type Position[E any] struct {
	node *node[E]
}

// Element returns the element stored at this position.
//
// It panics with ErrInvalidPosition if the position is the zero Position or
// has been removed from its list.
func (p Position[E]) Element() E {
	if p.node == nil || p.node.list == nil {
		panic(ErrInvalidPosition)
	}
	return p.node.element
}
