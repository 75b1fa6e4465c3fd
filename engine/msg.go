package engine

import (
	"github.com/google/uuid"
	"github.com/sarchlab/akita/v4/sim"
)

// CmdMsg carries one ModelingCmd across the connection to the
// geometry engine. CmdID is the uuid that also becomes the identity of
// the created geometric entity (spec.md I2, §6.2) — distinct from
// akita's own internal MsgMeta.ID, which only identifies the message.
type CmdMsg struct {
	sim.MsgMeta

	CmdID uuid.UUID
	Cmd   ModelingCmd
}

// Meta returns the akita message metadata.
func (m *CmdMsg) Meta() *sim.MsgMeta { return &m.MsgMeta }

// CmdMsgBuilder is a factory for CmdMsg, following the teacher's
// fluent With*/Build builder convention.
type CmdMsgBuilder struct {
	src, dst sim.Port
	sendTime sim.VTimeInSec
	cmdID    uuid.UUID
	cmd      ModelingCmd
}

func (b CmdMsgBuilder) WithSrc(src sim.Port) CmdMsgBuilder {
	b.src = src
	return b
}

func (b CmdMsgBuilder) WithDst(dst sim.Port) CmdMsgBuilder {
	b.dst = dst
	return b
}

func (b CmdMsgBuilder) WithSendTime(t sim.VTimeInSec) CmdMsgBuilder {
	b.sendTime = t
	return b
}

func (b CmdMsgBuilder) WithCmdID(id uuid.UUID) CmdMsgBuilder {
	b.cmdID = id
	return b
}

func (b CmdMsgBuilder) WithCmd(cmd ModelingCmd) CmdMsgBuilder {
	b.cmd = cmd
	return b
}

func (b CmdMsgBuilder) Build() *CmdMsg {
	return &CmdMsg{
		MsgMeta: sim.MsgMeta{
			ID:       sim.GetIDGenerator().Generate(),
			Src:      b.src,
			Dst:      b.dst,
			SendTime: b.sendTime,
		},
		CmdID: b.cmdID,
		Cmd:   b.cmd,
	}
}

// AckMsg is the engine's acknowledgement of a CmdMsg. Err is non-empty
// when the engine rejected the command.
type AckMsg struct {
	sim.MsgMeta

	CmdID uuid.UUID
	Err   string
}

func (m *AckMsg) Meta() *sim.MsgMeta { return &m.MsgMeta }

// AckMsgBuilder is a factory for AckMsg.
type AckMsgBuilder struct {
	src, dst sim.Port
	sendTime sim.VTimeInSec
	cmdID    uuid.UUID
	errMsg   string
}

func (b AckMsgBuilder) WithSrc(src sim.Port) AckMsgBuilder {
	b.src = src
	return b
}

func (b AckMsgBuilder) WithDst(dst sim.Port) AckMsgBuilder {
	b.dst = dst
	return b
}

func (b AckMsgBuilder) WithSendTime(t sim.VTimeInSec) AckMsgBuilder {
	b.sendTime = t
	return b
}

func (b AckMsgBuilder) WithCmdID(id uuid.UUID) AckMsgBuilder {
	b.cmdID = id
	return b
}

func (b AckMsgBuilder) WithError(msg string) AckMsgBuilder {
	b.errMsg = msg
	return b
}

func (b AckMsgBuilder) Build() *AckMsg {
	return &AckMsg{
		MsgMeta: sim.MsgMeta{
			ID:       sim.GetIDGenerator().Generate(),
			Src:      b.src,
			Dst:      b.dst,
			SendTime: b.sendTime,
		},
		CmdID: b.cmdID,
		Err:   b.errMsg,
	}
}

// Ack is a host-facing acknowledgement record. SendModelingCmd does not
// return it: it reports only success (nil) or an Engine error.
type Ack struct {
	CmdID uuid.UUID
}
