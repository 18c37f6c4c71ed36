// NOTE: This unit test demonstrates proper separation of concerns, allowing
// tests to focus solely on business logic by using test doubles for
// dependencies. Most end-to-end scenarios are covered in main_test.go; here we
// only assert the service-level contract against a fake storage.
package content_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"docker-content-demo/internal/content"
)

func TestService_Write(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("appends each input as one line", func(t *testing.T) {
		storage := &fakeStorage{}
		service := content.NewService(storage, logger)

		inputs := []string{"Hello Docker Volume!", "", "Hello Docker Volume!"}
		for _, in := range inputs {
			if err := service.Write(context.Background(), in); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		want := "Hello Docker Volume!\n\nHello Docker Volume!\n"
		if got := storage.contents; got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("propagates storage failures", func(t *testing.T) {
		storage := &fakeStorage{appendErr: errors.New("disk full")}
		service := content.NewService(storage, logger)

		err := service.Write(context.Background(), "anything")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, storage.appendErr) {
			t.Errorf("expected wrapped storage error, got %v", err)
		}
	})
}

func TestService_Read(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("returns accumulated content", func(t *testing.T) {
		storage := &fakeStorage{contents: "a\nb\n"}
		service := content.NewService(storage, logger)

		got, err := service.Read(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "a\nb\n" {
			t.Errorf("expected %q, got %q", "a\nb\n", got)
		}
	})

	t.Run("fresh storage reads as empty string", func(t *testing.T) {
		service := content.NewService(&fakeStorage{}, logger)

		got, err := service.Read(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

func TestService_LogsHint(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	service := content.NewService(&fakeStorage{}, logger)

	first := service.LogsHint()
	if !strings.Contains(first, "docker logs") {
		t.Errorf("expected hint to mention docker logs, got %q", first)
	}

	// The hint is static: prior writes must not change it.
	if err := service.Write(context.Background(), "state change"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := service.LogsHint(); got != first {
		t.Errorf("expected hint to stay %q, got %q", first, got)
	}
}

type fakeStorage struct {
	contents  string
	appendErr error
}

func (f *fakeStorage) Append(line string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.contents += line + "\n"
	return nil
}

func (f *fakeStorage) ReadAll() (string, error) {
	return f.contents, nil
}
