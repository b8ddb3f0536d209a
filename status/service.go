package status

// Service exposes the registry and frame monitor as the "status" service
// Stopping it logs the final frame statistics
type Service struct {
	registry *Registry
	monitor  *FrameMonitor
}

// NewService creates a registry with its frame monitor
func NewService() *Service {
	reg := NewRegistry()
	return &Service{
		registry: reg,
		monitor:  NewFrameMonitor(reg),
	}
}

func (s *Service) Name() string { return "status" }
func (s *Service) Init() error  { return nil }
func (s *Service) Start() error { return nil }

// Dependencies orders status after the display so it is stopped first and the
// final statistics cover every presented frame
func (s *Service) Dependencies() []string { return []string{"display"} }

func (s *Service) Stop() error {
	if s.monitor.count.Load() > 0 {
		s.monitor.LogStats()
	}
	return nil
}

func (s *Service) Registry() *Registry    { return s.registry }
func (s *Service) Monitor() *FrameMonitor { return s.monitor }
