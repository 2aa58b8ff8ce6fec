package wave

import "math"

// Sine approximation at fixed angular resolution: 64 steps per full
// cycle, 8-bit amplitude centered on Mid. The table replaces runtime
// trig in per-pixel loops; the hardware plugin runtime bakes the same
// values, so amplitude is the single constant both sides share.
const (
	// Steps is the number of samples covering one full period.
	Steps = 64
	// Mid is the sample value at zero amplitude.
	Mid = 128
	// Amplitude is the peak deviation from Mid.
	Amplitude = 112

	mask = Steps - 1
)

var table [Steps]uint8

func init() {
	for i := 0; i < Steps; i++ {
		rad := 2 * math.Pi * float64(i) / Steps
		table[i] = uint8(math.Round(Mid + Amplitude*math.Sin(rad)))
	}
}

// Sin returns the table sample for angle. Any input is valid: the index
// wraps with a bitwise mask, so the function is pure and branch-free.
func Sin(angle uint8) uint8 {
	return table[angle&mask]
}
