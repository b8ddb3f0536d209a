package audio

import "log"

func (c *Chime) Name() string           { return "audio" }
func (c *Chime) Dependencies() []string { return nil }

// Init opens the speaker; a failure is logged and the display runs silently
func (c *Chime) Init() error {
	if err := c.Initialize(); err != nil {
		log.Printf("[WARN] audio initialization failed: %v", err)
	}
	return nil
}

func (c *Chime) Start() error { return nil }

func (c *Chime) Stop() error {
	c.Cleanup()
	return nil
}
