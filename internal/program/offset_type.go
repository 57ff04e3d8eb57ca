package program

// OffsetType defines the type of a program offset.
type OffsetType uint8

// offset types, an offset can be of multiple types.
const (
	UnknownOffset OffsetType = 0
	CodeOffset    OffsetType = 1 << iota
	DataOffset
	CodeAsData      // for branches into instructions, the bytes are output as data
	CallDestination // offset is the destination of a call, indicating a subroutine
)

// IsType returns whether the offset is of given type.
func (o *Offset) IsType(typ OffsetType) bool {
	ret := o.Type&typ != 0
	return ret
}

// SetType sets the type of the offset.
func (o *Offset) SetType(typ OffsetType) {
	o.Type |= typ
}

// ClearType unsets the type of the offset.
func (o *Offset) ClearType(typ OffsetType) {
	mask := ^(typ)
	o.Type &= mask
}
