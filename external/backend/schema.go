package backend

import (
	"strings"

	"github.com/riskibarqy/marcador-reportes/internal/domain/leader"
	"github.com/riskibarqy/marcador-reportes/internal/domain/match"
	"github.com/riskibarqy/marcador-reportes/internal/domain/player"
	"github.com/riskibarqy/marcador-reportes/internal/domain/team"
	"github.com/riskibarqy/marcador-reportes/internal/platform/fieldmap"
	"github.com/riskibarqy/marcador-reportes/internal/usecase"
)

// Alias tables for the league backend. Each field lists PascalCase first and
// lower camel case second; the first truthy value wins.

var teamFields = struct {
	ID, Name, City, Points, Fouls, LogoURL fieldmap.Field
}{
	ID:      fieldmap.F("", "Id", "id"),
	Name:    fieldmap.F("", "Nombre", "nombre"),
	City:    fieldmap.F(usecase.Placeholder, "Ciudad", "ciudad"),
	Points:  fieldmap.F(0, "Puntos", "puntos"),
	Fouls:   fieldmap.F(0, "Faltas", "faltas"),
	LogoURL: fieldmap.F("", "LogoUrl", "logoUrl"),
}

var playerFields = struct {
	ID, Name, Position, Number, Age, Height, Nationality, TeamID, TeamName fieldmap.Field
}{
	ID:          fieldmap.F("", "Id", "id"),
	Name:        fieldmap.F("", "Nombre", "nombre"),
	Position:    fieldmap.F(usecase.Placeholder, "Posicion", "posicion"),
	Number:      fieldmap.F(usecase.Placeholder, "Numero", "numero"),
	Age:         fieldmap.F(usecase.Placeholder, "Edad", "edad"),
	Height:      fieldmap.F(usecase.Placeholder, "Estatura", "estatura"),
	Nationality: fieldmap.F(usecase.Placeholder, "Nacionalidad", "nacionalidad"),
	TeamID:      fieldmap.F("", "EquipoId", "equipoId"),
	TeamName:    fieldmap.F("", "EquipoNombre", "equipoNombre"),
}

// The team-name fields fall back to the team id when the backend did not
// join names in.
var matchFields = struct {
	ID, Kickoff, HomeName, HomeID, AwayName, AwayID, HomeScore, AwayScore fieldmap.Field
}{
	ID:        fieldmap.F("", "Id", "id"),
	Kickoff:   fieldmap.F("", "FechaHora", "fechaHora"),
	HomeName:  fieldmap.F("?", "EquipoLocalNombre", "equipoLocalNombre", "EquipoLocalId"),
	HomeID:    fieldmap.F("?", "EquipoLocalId", "equipoLocalId"),
	AwayName:  fieldmap.F("?", "EquipoVisitanteNombre", "equipoVisitanteNombre", "EquipoVisitanteId"),
	AwayID:    fieldmap.F("?", "EquipoVisitanteId", "equipoVisitanteId"),
	HomeScore: fieldmap.F(0, "MarcadorLocal", "PuntosLocal", "marcadorLocal"),
	AwayScore: fieldmap.F(0, "MarcadorVisitante", "PuntosVisitante", "marcadorVisitante"),
}

var rosterFields = struct {
	TeamID, PlayerName, Position fieldmap.Field
}{
	TeamID:     fieldmap.F("", "EquipoId", "equipoId"),
	PlayerName: fieldmap.F("", "JugadorNombre", "jugadorNombre"),
	Position:   fieldmap.F(usecase.Placeholder, "Posicion", "posicion"),
}

// Leaderboards use an em dash for a missing position.
const leaderPositionPlaceholder = "—"

var leaderFields = struct {
	Name, TeamName, Position, Value fieldmap.Field
}{
	Name:     fieldmap.F("", "Nombre", "nombre"),
	TeamName: fieldmap.F("", "EquipoNombre", "equipoNombre"),
	Position: fieldmap.F(leaderPositionPlaceholder, "Posicion", "posicion"),
	Value:    fieldmap.F(0, "Valor", "valor"),
}

var metricFields = map[leader.Metric]fieldmap.Field{
	leader.MetricPoints: fieldmap.F(0, "Puntos", "puntos"),
	leader.MetricFouls:  fieldmap.F(0, "Faltas", "faltas"),
}

const (
	homeRoleLabel = "Local"
	awayRoleLabel = "Visitante"
)

func toTeam(rec fieldmap.Record) team.Team {
	return team.Team{
		ID:      rec.String(teamFields.ID),
		Name:    rec.String(teamFields.Name),
		City:    rec.String(teamFields.City),
		Points:  rec.String(teamFields.Points),
		Fouls:   rec.String(teamFields.Fouls),
		LogoURL: strings.TrimSpace(rec.String(teamFields.LogoURL)),
	}
}

func toPlayer(rec fieldmap.Record) player.Player {
	return player.Player{
		ID:          rec.String(playerFields.ID),
		Name:        rec.String(playerFields.Name),
		Position:    rec.String(playerFields.Position),
		Number:      rec.String(playerFields.Number),
		Age:         rec.String(playerFields.Age),
		Height:      rec.String(playerFields.Height),
		Nationality: rec.String(playerFields.Nationality),
		TeamID:      rec.String(playerFields.TeamID),
		TeamName:    rec.String(playerFields.TeamName),
	}
}

func toMatch(rec fieldmap.Record, seq int) match.Match {
	return match.Match{
		Seq:        seq,
		ID:         rec.String(matchFields.ID),
		KickoffRaw: rec.String(matchFields.Kickoff),
		HomeTeam:   teamLabel(rec, matchFields.HomeName, matchFields.HomeID, homeRoleLabel),
		AwayTeam:   teamLabel(rec, matchFields.AwayName, matchFields.AwayID, awayRoleLabel),
		HomeScore:  rec.String(matchFields.HomeScore),
		AwayScore:  rec.String(matchFields.AwayScore),
	}
}

// teamLabel resolves a side's display name. Some backend rows carry the role
// ("Local") in the name field; those are replaced with "Equipo <id>".
func teamLabel(rec fieldmap.Record, name, id fieldmap.Field, role string) string {
	label := rec.String(name)
	if strings.EqualFold(strings.TrimSpace(label), role) {
		return "Equipo " + rec.String(id)
	}
	return label
}

func toRosterEntry(rec fieldmap.Record) match.RosterEntry {
	return match.RosterEntry{
		TeamID:     rec.String(rosterFields.TeamID),
		PlayerName: rec.String(rosterFields.PlayerName),
		Position:   rec.String(rosterFields.Position),
	}
}

func toLeaderEntry(rec fieldmap.Record) leader.Entry {
	value := rec.Value(leaderFields.Value)
	return leader.Entry{
		PlayerName: rec.String(leaderFields.Name),
		TeamName:   rec.String(leaderFields.TeamName),
		Position:   rec.String(leaderFields.Position),
		Value:      fieldmap.Float(value),
		ValueText:  fieldmap.String(value),
	}
}

func toPlayerTotal(rec fieldmap.Record, metric leader.Metric) leader.Entry {
	value := rec.Value(metricFields[metric])
	return leader.Entry{
		PlayerName: rec.String(leaderFields.Name),
		TeamName:   rec.String(leaderFields.TeamName),
		Position:   rec.String(leaderFields.Position),
		Value:      fieldmap.Float(value),
		ValueText:  fieldmap.String(value),
	}
}
