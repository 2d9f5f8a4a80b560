package leader

import (
	"sort"
	"strconv"
)

// Metric is the statistic a leaderboard ranks by.
type Metric string

const (
	MetricPoints Metric = "puntos"
	MetricFouls  Metric = "faltas"
)

const (
	TopSize     = 3
	RankingSize = 10
)

func (m Metric) Valid() bool {
	return m == MetricPoints || m == MetricFouls
}

// Label is the human title for the metric.
func (m Metric) Label() string {
	if m == MetricFouls {
		return "Faltas personales"
	}
	return "Puntos"
}

// Entry is one ranked player.
type Entry struct {
	PlayerName string
	TeamName   string
	Position   string
	Value      float64
	// ValueText keeps the upstream rendering when it was provided.
	ValueText string
}

// DisplayValue prefers the upstream text and otherwise prints Value without
// trailing zeros.
func (e Entry) DisplayValue() string {
	if e.ValueText != "" {
		return e.ValueText
	}
	return strconv.FormatFloat(e.Value, 'f', -1, 64)
}

// Board is a leaderboard split for rendering.
type Board struct {
	Top     []Entry
	Ranking []Entry
}

// Split keeps the first TopSize entries as the podium and the next
// RankingSize as the ranking. Anything after that is dropped.
func Split(entries []Entry) Board {
	var board Board
	if len(entries) == 0 {
		return board
	}

	top := min(len(entries), TopSize)
	board.Top = append([]Entry(nil), entries[:top]...)

	end := min(len(entries), TopSize+RankingSize)
	if end > top {
		board.Ranking = append([]Entry(nil), entries[top:end]...)
	}
	return board
}

// SortDescending orders entries by Value, highest first. Ties keep their
// input order.
func SortDescending(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
}
