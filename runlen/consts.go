package runlen

const (
	// a growing season starts (ends) with this many consecutive days
	// above (below) the temperature threshold
	GSLSequenceLength = 6

	// WSDI / CSDI spells last at least this many days unless configured
	DefaultSpellMinLength = 6
)
