package main

import (
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/oled-xmas/audio"
	"github.com/lixenwraith/oled-xmas/render"
	"github.com/lixenwraith/oled-xmas/service"
	"github.com/lixenwraith/oled-xmas/status"
)

func TestServicesStartOrder(t *testing.T) {
	display := render.NewScreenServiceWith(tcell.NewSimulationScreen("UTF-8"))
	hub, err := newServices(display, audio.NewChime(0, true))
	if err != nil {
		t.Fatalf("newServices: %v", err)
	}

	order, err := hub.Order()
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	want := []string{"audio", "display", "status"}
	if !slices.Equal(order, want) {
		t.Errorf("Order = %v, want %v", order, want)
	}

	if err := hub.InitAll(); err != nil {
		t.Fatalf("InitAll: %v", err)
	}
	if err := hub.StartAll(); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	if service.MustGet[*render.ScreenService](hub, "display").Screen() == nil {
		t.Error("display screen not open after InitAll")
	}
	stats := service.MustGet[*status.Service](hub, "status")
	if stats.Registry() == nil || stats.Monitor() == nil {
		t.Error("status service missing registry or monitor")
	}

	hub.StopAll()
	if display.Screen() != nil {
		t.Error("display screen still open after StopAll")
	}
}
