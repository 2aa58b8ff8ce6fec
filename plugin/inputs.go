package plugin

// Inputs is the raw button bitmask sampled once per frame. Bits are
// level state, not edges: a held button stays asserted every frame and
// multiple bits may be set at once. Bit positions are a wire contract
// with the input hardware.
type Inputs uint32

const (
	InputUp Inputs = 1 << iota
	InputDown
	InputLeft
	InputRight
	InputA
	InputB
	InputStart
	InputSelect
)

func (in Inputs) Up() bool     { return in&InputUp != 0 }
func (in Inputs) Down() bool   { return in&InputDown != 0 }
func (in Inputs) Left() bool   { return in&InputLeft != 0 }
func (in Inputs) Right() bool  { return in&InputRight != 0 }
func (in Inputs) A() bool      { return in&InputA != 0 }
func (in Inputs) B() bool      { return in&InputB != 0 }
func (in Inputs) Start() bool  { return in&InputStart != 0 }
func (in Inputs) Select() bool { return in&InputSelect != 0 }
