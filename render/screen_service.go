package render

import "github.com/gdamore/tcell/v2"

// ScreenService owns the terminal screen for the lifetime of the program
type ScreenService struct {
	screen tcell.Screen
	open   func() (tcell.Screen, error)
}

// NewScreenService creates a service opening the real terminal on Init
func NewScreenService() *ScreenService {
	return &ScreenService{open: NewScreen}
}

// NewScreenServiceWith opens the given screen instead of the terminal, for simulation screens
func NewScreenServiceWith(screen tcell.Screen) *ScreenService {
	return &ScreenService{open: func() (tcell.Screen, error) {
		if err := screen.Init(); err != nil {
			return nil, err
		}
		return screen, nil
	}}
}

func (s *ScreenService) Name() string           { return "display" }
func (s *ScreenService) Dependencies() []string { return nil }

// Init opens the screen
func (s *ScreenService) Init() error {
	screen, err := s.open()
	if err != nil {
		return err
	}
	s.screen = screen
	return nil
}

func (s *ScreenService) Start() error { return nil }

// Stop restores the terminal; safe to call more than once
func (s *ScreenService) Stop() error {
	if s.screen != nil {
		s.screen.Fini()
		s.screen = nil
	}
	return nil
}

// Screen returns the open screen, nil before Init or after Stop
func (s *ScreenService) Screen() tcell.Screen {
	return s.screen
}
