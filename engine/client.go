package engine

import (
	"github.com/google/uuid"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/cadrun/kclexec/ast"
	"github.com/cadrun/kclexec/kclerrors"
)

// Client is the executor-side half of the engine command issuer
// (spec.md §4.H). It is an akita ticking component so command/ack
// traffic rides the same ordered, asynchronous Port abstraction the
// teacher uses for on-chip traffic (core.Core's MemPort) — commands
// submitted through one Client are never reordered relative to each
// other (spec.md §5 ordering guarantee (c)).
type Client struct {
	*sim.TickingComponent

	toRemote sim.Port
	remote   sim.Port
	simEngine sim.Engine
}

// Tick is a no-op: Client has no autonomous per-cycle work of its own,
// it only reacts synchronously inside SendModelingCmd (mirroring
// core.Core.Tick's Waiting-flag poll, but driven inline rather than by
// the outer scheduler since each kcl statement fully awaits its own
// command before the interpreter continues — spec.md §5(d)).
func (c *Client) Tick(now sim.VTimeInSec) (madeProgress bool) {
	return false
}

// NewClient builds a Client wired to an in-process stub geometry
// engine via a direct connection, ready to drive simEngine. A host
// embedding a real geometry-engine transport replaces stubEngine with
// its own akita component on the other end of the same connection.
func NewClient(simEngine sim.Engine, freq sim.Freq) *Client {
	c := &Client{simEngine: simEngine}
	c.TickingComponent = sim.NewTickingComponent("EngineClient", simEngine, freq, c)
	c.toRemote = sim.NewLimitNumMsgPort(c, 16, "EngineClient.ToEngine")
	c.AddPort("ToEngine", c.toRemote)

	stub := newStubEngine(simEngine, freq)

	conn := directconnection.MakeBuilder().WithEngine(simEngine).WithFreq(freq).Build("EngineConn")
	conn.PlugIn(c.toRemote)
	conn.PlugIn(stub.port)

	c.remote = stub.port

	return c
}

// SendModelingCmd submits one command and blocks until the engine
// acknowledges it (spec.md §4.H, §5 suspension points). The executor
// suspends here and resumes on acknowledgement; an engine rejection
// surfaces as a KclError of kind Engine carrying the originating
// source range.
func (c *Client) SendModelingCmd(id uuid.UUID, cmd interface{}, r ast.SourceRange) error {
	modelingCmd, ok := cmd.(ModelingCmd)
	if !ok {
		return kclerrors.Enginef(r, "internal: %T is not a ModelingCmd", cmd)
	}

	const sendTime sim.VTimeInSec = 0

	msg := CmdMsgBuilder{}.
		WithSrc(c.toRemote).
		WithDst(c.remote).
		WithSendTime(sendTime).
		WithCmdID(id).
		WithCmd(modelingCmd).
		Build()

	if err := c.toRemote.Send(msg); err != nil {
		return kclerrors.Enginef(r, "failed to submit command: %v", err)
	}

	// Engine.Run() drains every scheduled event — ours and the stub's —
	// until the system is quiescent, then returns (spec.md §5: only
	// calls that issue engine commands may suspend).
	c.simEngine.Run()

	rsp := c.toRemote.Peek()
	if rsp == nil {
		return kclerrors.Enginef(r, "no acknowledgement received for command %s", id)
	}
	c.toRemote.Retrieve(sendTime)

	ack, ok := rsp.(*AckMsg)
	if !ok {
		return kclerrors.Enginef(r, "unexpected response type %T for command %s", rsp, id)
	}
	if ack.Err != "" {
		return kclerrors.Enginef(r, "engine rejected command %s: %s", id, ack.Err)
	}
	return nil
}

// stubEngine is a minimal in-process stand-in for the real geometry
// engine: it acknowledges every command it receives. It exists so the
// executor is runnable end to end without a real transport; a host
// embedding kclexec wires its own transport in its place.
type stubEngine struct {
	*sim.TickingComponent

	port sim.Port
}

func newStubEngine(simEngine sim.Engine, freq sim.Freq) *stubEngine {
	s := &stubEngine{}
	s.TickingComponent = sim.NewTickingComponent("StubGeometryEngine", simEngine, freq, s)
	s.port = sim.NewLimitNumMsgPort(s, 16, "StubGeometryEngine.Port")
	s.AddPort("Port", s.port)
	return s
}

func (s *stubEngine) Tick(now sim.VTimeInSec) (madeProgress bool) {
	msg := s.port.Peek()
	if msg == nil {
		return false
	}

	cmdMsg, ok := msg.(*CmdMsg)
	if !ok {
		return false
	}
	s.port.Retrieve(now)

	ack := AckMsgBuilder{}.
		WithSrc(s.port).
		WithDst(cmdMsg.Src).
		WithSendTime(now).
		WithCmdID(cmdMsg.CmdID).
		Build()

	if err := s.port.Send(ack); err != nil {
		return false
	}
	return true
}
