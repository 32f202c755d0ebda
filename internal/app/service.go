package app

import (
	"context"
	"database/sql"
	"puzreader/internal/db"
	"puzreader/internal/logging"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// SubjectImported carries the id of every newly imported puzzle.
const SubjectImported = "puzzles.imported"

type Service struct {
	Queries *db.Queries

	db *sql.DB

	Logger *log.Logger

	NatsServer *server.Server

	NC *nats.Conn
}

func NewService(queries *db.Queries, dbConn *sql.DB) *Service {
	s := &Service{
		Queries: queries,
		db:      dbConn,
		Logger:  logging.Default(),
	}

	s.startNats()

	return s
}

func (s *Service) startNats() {
	opts := &server.Options{
		Port:  -1,
		NoLog: true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		s.Logger.Error("failed to create NATS server", logging.FieldError, err)
		return
	}

	go ns.Start()

	if !ns.ReadyForConnections(2 * time.Second) {
		s.Logger.Error("NATS server failed to become ready")
		return
	}

	s.Logger.Debug("NATS server ready", logging.FieldAddr, ns.ClientURL())
	s.NatsServer = ns

	nc, err := nats.Connect(ns.ClientURL())
	if err != nil {
		s.Logger.Error("NATS client failed to connect", logging.FieldError, err)
		return
	}
	s.NC = nc
}

func (s *Service) Shutdown() {
	if s.NC != nil {
		s.NC.Close()
	}

	if s.NatsServer != nil {
		s.NatsServer.Shutdown()
		s.NatsServer.WaitForShutdown()
	}
}

// BroadcastImport publishes the puzzle id on SubjectImported. It is a no-op
// when the embedded broker is unavailable.
func (s *Service) BroadcastImport(puzzleID string) {
	if s.NC == nil {
		s.Logger.Warn("broadcast skipped: NATS connection is nil", logging.FieldPuzzleID, puzzleID)
		return
	}

	s.Logger.Debug("publishing import", logging.FieldSubject, SubjectImported, logging.FieldPuzzleID, puzzleID)
	if err := s.NC.Publish(SubjectImported, []byte(puzzleID)); err != nil {
		s.Logger.Warn("publish failed", logging.FieldError, err)
	}
}

// Subscribe delivers imported puzzle ids to fn until ctx is done.
func (s *Service) Subscribe(ctx context.Context, fn func(puzzleID string)) error {
	if s.NC == nil {
		return nats.ErrConnectionClosed
	}

	sub, err := s.NC.Subscribe(SubjectImported, func(m *nats.Msg) {
		fn(string(m.Data))
	})
	if err != nil {
		return err
	}
	if err := s.NC.Flush(); err != nil {
		_ = sub.Unsubscribe()
		return err
	}

	go func() {
		<-ctx.Done()
		_ = sub.Unsubscribe()
	}()
	return nil
}
