// Package nctype parses textual nano-contract type descriptors such as
// "SignedData[Optional[int]]" into an AST of type nodes. The AST is produced
// once per descriptor and consumed read-only by the field factory.
package nctype

import "strings"

// Kind discriminates the node variants of a parsed type descriptor.
type Kind int

const (
	KindSimple Kind = iota
	KindOptional
	KindSignedData
	KindRawSignedData
	KindTuple
	KindList
	KindSet
	KindFrozenSet
	KindDeque
	KindDict
)

// Leaf type names accepted in a descriptor.
const (
	TypeStr            = "str"
	TypeInt            = "int"
	TypeVarInt         = "VarInt"
	TypeBool           = "bool"
	TypeBytes          = "bytes"
	TypeAddress        = "Address"
	TypeTimestamp      = "Timestamp"
	TypeAmount         = "Amount"
	TypeTokenUid       = "TokenUid"
	TypeTxOutputScript = "TxOutputScript"
	TypeBlueprintId    = "BlueprintId"
	TypeContractId     = "ContractId"
	TypeVertexId       = "VertexId"
)

var simpleTypeNames = []string{
	TypeStr,
	TypeInt,
	TypeVarInt,
	TypeBool,
	TypeBytes,
	TypeAddress,
	TypeTimestamp,
	TypeAmount,
	TypeTokenUid,
	TypeTxOutputScript,
	TypeBlueprintId,
	TypeContractId,
	TypeVertexId,
}

// Node is one node of a parsed type descriptor. A node is either a leaf
// (KindSimple) naming one of the fixed leaf types, or a container wrapping
// one or more inner nodes.
type Node struct {
	Kind Kind
	// Name holds the leaf type name for simple nodes and the subtype
	// descriptor string for signed-data nodes.
	Name  string
	Inner []*Node
}

// String reconstructs a canonical descriptor for the node.
func (n *Node) String() string {
	switch n.Kind {
	case KindSimple:
		return n.Name
	case KindOptional:
		return n.Inner[0].String() + "?"
	case KindSignedData:
		return "SignedData[" + n.Name + "]"
	case KindRawSignedData:
		return "RawSignedData[" + n.Name + "]"
	case KindTuple:
		return "tuple[" + joinInner(n.Inner) + "]"
	case KindList:
		return "list[" + n.Inner[0].String() + "]"
	case KindSet:
		return "set[" + n.Inner[0].String() + "]"
	case KindFrozenSet:
		return "frozenset[" + n.Inner[0].String() + "]"
	case KindDeque:
		return "deque[" + n.Inner[0].String() + "]"
	case KindDict:
		return "dict[" + joinInner(n.Inner) + "]"
	}
	return ""
}

func joinInner(nodes []*Node) string {
	parts := make([]string, len(nodes))
	for i, node := range nodes {
		parts[i] = node.String()
	}
	return strings.Join(parts, ", ")
}
