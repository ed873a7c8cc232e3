// Package builder defines shared constants used by fixtures, ensuring
// consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Fixture Method Name Constants
//   used to prefix errors with the fixture name for context.
//-----------------------------------------------------------------------------

const (
	// MethodListSplit is the canonical name for the ListSplit fixture.
	MethodListSplit = "ListSplit"
	// MethodTruthTable is the canonical name for the TruthTable fixture.
	MethodTruthTable = "TruthTable"
	// MethodEnum is the canonical name for the Enum fixture.
	MethodEnum = "Enum"
	// MethodOrChain is the canonical name for the OrChain fixture.
	MethodOrChain = "OrChain"
	// MethodListPrefixes is the canonical name for the ListPrefixes fixture.
	MethodListPrefixes = "ListPrefixes"
	// MethodCatchAll is the canonical name for the CatchAll fixture.
	MethodCatchAll = "CatchAll"
	// MethodRandomTable is the canonical name for the RandomTable fixture.
	MethodRandomTable = "RandomTable"
)

//-----------------------------------------------------------------------------
// Type names declared by the fixtures
//-----------------------------------------------------------------------------

const (
	// TypeTree holds List/0 and Split/2.
	TypeTree = "Tree"
	// TypeBool holds True/0 and False/0.
	TypeBool = "Bool"
	// TypeOption holds None/0 and Some/1.
	TypeOption = "Option"
	// TypeList holds Nil/0 and Cons/2.
	TypeList = "List"
	// TypeEnum holds the n variants named by the NameFn.
	TypeEnum = "Enum"
)

//-----------------------------------------------------------------------------
// Size bounds
//-----------------------------------------------------------------------------

// MinEnumVariants is the smallest enum; a single variant is already complete.
const MinEnumVariants = 1

// MinTruthColumns is the narrowest truth table.
const MinTruthColumns = 1

// MaxTruthColumns bounds TruthTable at 2^16 rows.
const MaxTruthColumns = 16

// MinRandomRows is the smallest RandomTable.
const MinRandomRows = 1

// DefaultActionBase is the action of the first row BuildMatrix emits.
const DefaultActionBase = 1

// DefaultWildcardProbability is the chance RandomTable draws `_` for a cell.
const DefaultWildcardProbability = 0.3

// MinProbability is the lower bound of a probability, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound of a probability, inclusive.
const MaxProbability = 1.0
