package content

import (
	"context"
	"fmt"
	"log/slog"
)

// Greeting is the fixed banner returned by the index endpoint.
const Greeting = "Docker Content Management Demo"

// logsHint points operators at the container runtime's own log facility.
// The service never touches actual log storage; this is in-app documentation.
const logsHint = "Use `docker logs <container-name>` to view the container logs."

// Storage provides access to the persisted demo content.
// It abstracts the underlying storage mechanism (filesystem, cloud storage, etc.).
//
// NOTE: We only wrote a filesystem implementation for now but we would most
// likely also accept a [context.Context] for implementations using the network.
type Storage interface {
	// Append adds one line to the end of the stored content.
	Append(line string) error

	// ReadAll returns the full stored content, or the empty string
	// if nothing has been written yet.
	ReadAll() (string, error)
}

// Service mediates HTTP access to the single append-only content resource.
// Every operation is stateless request/response; the file's contents are the
// only external state.
type Service struct {
	storage Storage
	logger  *slog.Logger
}

// NewService creates a new [Service] persisting content through the given
// storage backend.
func NewService(storage Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Write appends text as one line to the stored content. The empty string is
// a valid input and produces a blank line. Append semantics are deliberate:
// writing the same text twice yields two lines.
func (s *Service) Write(ctx context.Context, text string) error {
	if err := s.storage.Append(text); err != nil {
		return fmt.Errorf("append content: %w", err)
	}

	s.logger.Debug("Content line appended", slog.Int("length", len(text)))

	return nil
}

// Read returns the accumulated content as a single string. A service that
// was never written to reads as the empty string, not an error.
func (s *Service) Read(ctx context.Context) (string, error) {
	text, err := s.storage.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}

	return text, nil
}

// LogsHint returns the static guidance string shown on the logs endpoint.
// It is the same regardless of prior state.
func (s *Service) LogsHint() string {
	return logsHint
}
