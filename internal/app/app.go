package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/panel-control/internal/bus"
	"github.com/atomicstack/panel-control/internal/host"
	"github.com/atomicstack/panel-control/internal/logging/events"
	"github.com/atomicstack/panel-control/internal/machine"
	"github.com/atomicstack/panel-control/internal/panel"
	"github.com/atomicstack/panel-control/internal/scheduler"
)

// Config describes user-provided application options.
type Config struct {
	Panel     panel.Config
	FilesRoot string
	Dump      bool
	// Hold is how long a key press holds a panel button.
	Hold time.Duration
}

// Run bootstraps the simulated machine and the panel, then executes the
// Bubble Tea program until the user quits.
func Run(cfg Config) error {
	sim := machine.New(localAddress())
	data := bus.NewMemory()
	sim.Register(data)

	keys := host.NewKeys(cfg.Hold)
	model := host.NewModel(keys)
	program := tea.NewProgram(model, tea.WithAltScreen())

	pcfg := cfg.Panel
	if cfg.FilesRoot != "" {
		pcfg.Files = os.DirFS(cfg.FilesRoot)
		pcfg.FilesDir = "."
	}
	p, err := panel.New(pcfg, data, sim, keys, host.NewSink(program.Send))
	if err != nil {
		return fmt.Errorf("build panel: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := scheduler.New()
	if err := clock.AttachEvery("machine", time.Second, func() { sim.Step(time.Second) }); err != nil {
		return err
	}
	clock.Start(ctx)

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	_, err = program.Run()
	cancel()
	clock.Wait()
	if runErr := <-done; runErr != nil && err == nil {
		err = runErr
	}
	events.App.Stop("quit")
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// localAddress returns the first non-loopback IPv4 address, or the zero
// address when there is none.
func localAddress() bus.Address {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return bus.Address{}
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return bus.Address{ip4[0], ip4[1], ip4[2], ip4[3]}
		}
	}
	return bus.Address{}
}
