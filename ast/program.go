package ast

// Programs batches independently compiled units. It is a pure aggregation
// convenience: parsing never produces one, and no relationship between the
// units is implied. The units keep a nil Parent — each Program stays the
// root of its own tree even while batched, so ancestor queries on its
// descendants are unaffected.
type Programs struct {
	NodeBase
	Units []*Program
}

// Program is the root of one compilation unit. Its Parent is always nil.
type Program struct {
	NodeBase
	ScopeBase
	// Filename is caller-supplied and used only for diagnostics.
	Filename string
	Body     []Statement
}
