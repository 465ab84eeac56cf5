package currency

import (
	"context"
	"errors"
	"testing"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

type countingSource struct {
	rate  float64
	err   error
	calls int
}

func (s *countingSource) INRPerUSD(ctx context.Context) (float64, error) {
	s.calls++
	return s.rate, s.err
}

func TestResolver_CachesFirstResolution(t *testing.T) {
	src := &countingSource{rate: 83.2}
	r := NewResolver(src, nil)

	first := r.INRPerUSD(context.Background())
	second := r.INRPerUSD(context.Background())

	if first != 83.2 || second != 83.2 {
		t.Fatalf("rates = %v, %v, want 83.2 both times", first, second)
	}
	if src.calls != 1 {
		t.Fatalf("source called %d times, want 1", src.calls)
	}
}

func TestResolver_Reset(t *testing.T) {
	src := &countingSource{rate: 83.2}
	r := NewResolver(src, nil)

	r.INRPerUSD(context.Background())
	r.Reset()
	r.INRPerUSD(context.Background())

	if src.calls != 2 {
		t.Fatalf("source called %d times after reset, want 2", src.calls)
	}
}

func TestResolver_FallsBackToTable(t *testing.T) {
	src := &countingSource{err: errors.New("network down")}
	r := NewResolver(src, []tables.ExchangeRate{{USD: 81}})

	if got := r.INRPerUSD(context.Background()); got != 81 {
		t.Fatalf("rate = %v, want table rate 81", got)
	}
}

func TestResolver_FallsBackToConstant(t *testing.T) {
	src := &countingSource{err: errors.New("network down")}
	r := NewResolver(src, nil)

	if got := r.INRPerUSD(context.Background()); got != DefaultINRPerUSD {
		t.Fatalf("rate = %v, want %v", got, DefaultINRPerUSD)
	}
}

func TestFromTable_Heuristics(t *testing.T) {
	// Above 1 is already INR per USD.
	if got, ok := FromTable([]tables.ExchangeRate{{USD: 82.5}}); !ok || got != 82.5 {
		t.Fatalf("direct rate = %v ok=%v", got, ok)
	}
	// At or below 1 is USD per INR and inverts.
	if got, ok := FromTable([]tables.ExchangeRate{{USD: 0.0125}}); !ok || got != 80 {
		t.Fatalf("inverted rate = %v ok=%v", got, ok)
	}
	// Latest row wins.
	if got, _ := FromTable([]tables.ExchangeRate{{USD: 75}, {USD: 84}}); got != 84 {
		t.Fatalf("latest rate = %v, want 84", got)
	}
	if _, ok := FromTable(nil); ok {
		t.Fatal("empty table should yield no rate")
	}
}
