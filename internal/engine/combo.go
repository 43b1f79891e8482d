package engine

// comboPattern describes a known-good pairing: one primary piece with a
// stack of secondary pieces placed beside it, sharing the primary's
// length. These capture synergies between common size ratios that the
// generic passes tend to miss.
type comboPattern struct {
	primaryW, primaryL     float64
	secondaryW, secondaryL float64
	secondaryCount         int
}

// comboPatterns is the fixed table of beneficial pairings, in cm.
var comboPatterns = []comboPattern{
	{primaryW: 120, primaryL: 200, secondaryW: 30, secondaryL: 100, secondaryCount: 2},
	{primaryW: 100, primaryL: 150, secondaryW: 50, secondaryL: 75, secondaryCount: 2},
	{primaryW: 80, primaryL: 150, secondaryW: 40, secondaryL: 75, secondaryCount: 2},
	{primaryW: 70, primaryL: 200, secondaryW: 80, secondaryL: 100, secondaryCount: 2},
	{primaryW: 150, primaryL: 200, secondaryW: 150, secondaryL: 200, secondaryCount: 1},
}

// placeCombos greedily instantiates as many copies of each pattern as the
// demand allows, before any generic pass runs, so the patterns get first
// claim on open space. Each instance commits atomically: either the
// primary and the full secondary stack are placed together, or nothing
// is. The phase is purely opportunistic and never fails the run.
func (s *session) placeCombos() {
	for _, pattern := range comboPatterns {
		primary := s.find(pattern.primaryW, pattern.primaryL)
		secondary := s.find(pattern.secondaryW, pattern.secondaryL)
		if primary == nil || secondary == nil {
			continue
		}

		for primary.remaining > 0 && secondary.remaining >= pattern.secondaryCount {
			if !s.placeComboInstance(pattern) {
				break
			}
			primary.remaining--
			secondary.remaining -= pattern.secondaryCount
		}
	}
}

// placeComboInstance scans candidate positions left-to-right, top-to-
// bottom in grid steps and commits the first position where the primary
// piece and the full secondary stack both fit.
func (s *session) placeComboInstance(p comboPattern) bool {
	stackH := p.secondaryL * float64(p.secondaryCount)

	for y := 0.0; y+p.primaryL <= s.roll.Length; y += s.step {
		for x := 0.0; x+p.primaryW+p.secondaryW <= s.roll.Width; x += s.step {
			if s.occupied(x, y, p.primaryW, p.primaryL) {
				continue
			}
			if s.occupied(x+p.primaryW, y, p.secondaryW, stackH) {
				continue
			}

			s.commit(x, y, p.primaryW, p.primaryL)
			for i := 0; i < p.secondaryCount; i++ {
				s.commit(x+p.primaryW, y+float64(i)*p.secondaryL, p.secondaryW, p.secondaryL)
			}
			return true
		}
	}
	return false
}
