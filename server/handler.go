package server

import (
	"errors"
	"io"

	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"

	errs "gomud/internal/errors"
	"gomud/internal/session"
	"gomud/internal/term"
)

// handle runs one accepted SSH connection: it registers a session,
// then decodes the raw byte stream into key events for the session
// machine until the client disconnects or the session terminates.
func (s *Server) handle(sshSess ssh.Session) {
	id := uuid.NewString()
	log := s.log.Prefixed("session " + id[:8])
	s.metrics.SessionOpened()
	defer s.metrics.SessionClosed()

	sess := session.New(id, sshSess.User(), sshSess.RemoteAddr().String(), sshSess, s.game, s.reg, log)
	if err := s.reg.Add(sess); err != nil {
		log.Error("register: %v", err)
		s.metrics.RecordError(err.Error())
		return
	}
	defer sess.Terminate("disconnect")

	log.Info("connected: %s@%s", sshSess.User(), sshSess.RemoteAddr())
	sess.Begin()

	var dec term.Decoder
	buf := make([]byte, 256)
	ctx := sshSess.Context()
	for {
		n, err := sshSess.Read(buf)
		for _, b := range buf[:n] {
			k, ok := dec.Feed(b)
			if !ok {
				continue
			}
			if herr := sess.HandleKey(ctx, k); herr != nil {
				if !errs.IsFatalToSession(herr) {
					log.Warn("handle key: %v", herr)
					s.metrics.RecordError(herr.Error())
				}
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Verbose("read: %v", err)
			}
			return
		}
	}
}
