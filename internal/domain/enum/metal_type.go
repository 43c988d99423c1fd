package enum

// MetalType identifies the metal a line item or settlement balances in.
type MetalType string

const (
	MetalGold   MetalType = "gold"
	MetalSilver MetalType = "silver"
)

func (m MetalType) Valid() bool {
	return m == MetalGold || m == MetalSilver
}
