package contract

// Mutability is the state mutability of a function
type Mutability string

const (
	Pure       Mutability = "pure"
	View       Mutability = "view"
	NonPayable Mutability = "nonpayable"
	Payable    Mutability = "payable"
)

// MutabilityRank orders mutabilities from the most to the least restrictive
var MutabilityRank = []Mutability{Pure, View, NonPayable, Payable}

// Rank returns the position of m in MutabilityRank, or -1 when m is unknown
func (m Mutability) Rank() int {
	for i, candidate := range MutabilityRank {
		if candidate == m {
			return i
		}
	}
	return -1
}

// IsValid reports whether m is one of the four known mutabilities
func (m Mutability) IsValid() bool {
	return m.Rank() >= 0
}

// MaxMutability returns the least restrictive of a and b
func MaxMutability(a, b Mutability) Mutability {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}
