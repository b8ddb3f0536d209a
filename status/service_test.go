package status

import (
	"bytes"
	"log"
	"os"
	"slices"
	"strings"
	"testing"
)

func TestServiceStopLogsStats(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	s := NewService()
	if s.Monitor() == nil || s.Registry() == nil {
		t.Fatal("service missing registry or monitor")
	}

	// No frames yet, nothing to report
	s.Stop()
	if buf.Len() != 0 {
		t.Errorf("Stop without frames logged %q", buf.String())
	}

	s.Monitor().StartFrame()
	s.Monitor().EndFrame()
	s.Stop()
	for _, want := range []string{"frames=1", "metrics)"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Stop log = %q, missing %q", buf.String(), want)
		}
	}
	if deps := s.Dependencies(); !slices.Equal(deps, []string{"display"}) {
		t.Errorf("Dependencies = %v, want [display]", deps)
	}
}
