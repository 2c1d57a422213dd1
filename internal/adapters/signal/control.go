package signal

import (
	"github.com/VedSharma9644/Omegle-clone/internal/core"
	"github.com/VedSharma9644/Omegle-clone/internal/domain"
)

func (ctl *SignalWSController) handlePing(conn *WsSignalConn) {
	ctl.sendJSON(conn, core.NewPong())
}

func (ctl *SignalWSController) handleWhoAmI(sid domain.ParticipantID, conn *WsSignalConn) {
	ctl.sendJSON(conn, core.NewWhoAmI(sid))
}
