package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// CreateMatch spawns the match singleton in the Loading state.
func CreateMatch(w donburi.World, player1, player2 string, targetScore int) *donburi.Entry {
	entry := archetypes.Match.Spawn(w)
	components.Match.SetValue(entry, components.MatchData{
		State:       cfg.MatchStateLoading,
		Player1Name: player1,
		Player2Name: player2,
		TargetScore: targetScore,
	})
	return entry
}
