package recommend

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/hallyulab/dramarec/internal/domain"
	"github.com/hallyulab/dramarec/internal/domain/query/mode"
	"github.com/hallyulab/dramarec/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterEngineMetrics()
	os.Exit(m.Run())
}

func TestInstrumented_DelegatesToEngine(t *testing.T) {
	engine := newTestService()
	svc := NewInstrumented(engine, zap.NewNop())

	req := makeRequest(t, "grief healing", mode.Auto, 10)
	rec, err := svc.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plain, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(rec.Results(), plain.Results()) {
		t.Error("instrumented results diverge from the engine's")
	}
}

func TestInstrumented_PropagatesErrors(t *testing.T) {
	svc := NewInstrumented(newTestService(), zap.NewNop())

	_, err := svc.Recommend(context.Background(), makeRequest(t, "no such show anywhere", mode.Title, 10))
	if !errors.Is(err, domain.ErrTitleNotFound) {
		t.Fatalf("expected ErrTitleNotFound, got %v", err)
	}
}

func TestInstrumented_ExposesSnapshotHelpers(t *testing.T) {
	svc := NewInstrumented(newTestService(), zap.NewNop())

	if svc.Stats().Records != 3 {
		t.Errorf("expected 3 records, got %d", svc.Stats().Records)
	}
	if len(svc.Records()) != 3 {
		t.Errorf("expected 3 records, got %d", len(svc.Records()))
	}
}
