package leader

import (
	"strconv"
	"testing"
)

func entries(n int) []Entry {
	out := make([]Entry, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Entry{PlayerName: "P" + strconv.Itoa(i), Value: float64(100 - i)})
	}
	return out
}

func TestSplit(t *testing.T) {
	t.Run("fifteen entries drop the tail", func(t *testing.T) {
		board := Split(entries(15))
		if len(board.Top) != 3 {
			t.Fatalf("expected 3 top entries, got=%d", len(board.Top))
		}
		if len(board.Ranking) != 10 {
			t.Fatalf("expected 10 ranking entries, got=%d", len(board.Ranking))
		}
		if board.Ranking[0].PlayerName != "P4" || board.Ranking[9].PlayerName != "P13" {
			t.Fatalf("unexpected ranking bounds: first=%s last=%s", board.Ranking[0].PlayerName, board.Ranking[9].PlayerName)
		}
	})

	t.Run("short lists", func(t *testing.T) {
		if board := Split(nil); board.Top != nil || board.Ranking != nil {
			t.Fatalf("expected empty board, got=%+v", board)
		}
		board := Split(entries(2))
		if len(board.Top) != 2 || len(board.Ranking) != 0 {
			t.Fatalf("unexpected split: top=%d ranking=%d", len(board.Top), len(board.Ranking))
		}
	})
}

func TestSortDescending_IsStable(t *testing.T) {
	list := []Entry{
		{PlayerName: "A", Value: 10},
		{PlayerName: "B", Value: 20},
		{PlayerName: "C", Value: 20},
	}
	SortDescending(list)

	got := list[0].PlayerName + list[1].PlayerName + list[2].PlayerName
	if got != "BCA" {
		t.Fatalf("expected BCA, got=%s", got)
	}
}

func TestEntryDisplayValue(t *testing.T) {
	if got := (Entry{Value: 12}).DisplayValue(); got != "12" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := (Entry{Value: 12.5}).DisplayValue(); got != "12.5" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := (Entry{Value: 7, ValueText: "7"}).DisplayValue(); got != "7" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestMetric(t *testing.T) {
	if !MetricPoints.Valid() || !MetricFouls.Valid() || Metric("asistencias").Valid() {
		t.Fatalf("unexpected metric validation")
	}
	if MetricFouls.Label() != "Faltas personales" {
		t.Fatalf("unexpected label: %q", MetricFouls.Label())
	}
}
