// Package ui renders floors to the terminal with tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is a thin wrapper around tcell.Screen exposing only what the floor
// viewer needs.
type Screen struct {
	screen tcell.Screen
}

// NewScreen initializes the terminal for full-screen drawing. The cursor is
// hidden; the viewer is keyboard-only.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal to its previous state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear wipes the draw buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes buffered cells to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent writes one styled rune at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size reports the terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync redraws the whole terminal, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}
