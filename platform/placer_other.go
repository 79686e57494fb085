//go:build !windows

package platform

// OtherPlacer is used where windows cannot be placed from outside the toolkit
type OtherPlacer struct{}

// NewPlacer creates the fallback Placer
func NewPlacer() Placer {
	return &OtherPlacer{}
}

// ScreenSize is unknown here
func (p *OtherPlacer) ScreenSize() (int, int, bool) {
	return 0, 0, false
}

// Position is unknown here
func (p *OtherPlacer) Position(string) (int, int, bool) {
	return 0, 0, false
}

// Move always fails with ErrUnsupported
func (p *OtherPlacer) Move(string, int, int) error {
	return ErrUnsupported
}
