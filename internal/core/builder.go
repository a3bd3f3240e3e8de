package core

import (
	"fmt"

	"p2pchat/config"
	"p2pchat/internal/message"
	"p2pchat/internal/session"
	"p2pchat/internal/transport"
	"p2pchat/util"
)

// Build constructs the Mode for cfg.  rt supplies the I/O endpoints;
// its Session options are filled in from cfg.
func Build(cfg *config.Config, rt Runtime) (Mode, error) {
	framing, err := message.ParseFraming(cfg.Framing)
	if err != nil {
		return nil, err
	}
	rt.Session = session.Options{
		Framing:    framing,
		MaxMessage: cfg.MaxMessage,
		BufferSize: cfg.BufferSize,
		Label:      cfg.Label,
	}
	rt.Stats = rt.Stats || cfg.Stats

	switch cfg.Mode {
	case config.ModeServer:
		return &ServerMode{Address: cfg.Address(), Runtime: rt}, nil
	case config.ModeClient:
		addr, err := util.ResolveAddr(cfg.Host, cfg.Port, cfg.NoDNS)
		if err != nil {
			return nil, err
		}
		return &ClientMode{
			Dialer:  &transport.TCPDialer{Timeout: cfg.Timeout},
			Address: addr,
			Runtime: rt,
		}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}
