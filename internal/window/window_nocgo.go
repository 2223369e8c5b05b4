//go:build !cgo

package window

// Run reports that the window shell is not compiled in.
func (a *App) Run() error {
	return ErrUnavailable
}
