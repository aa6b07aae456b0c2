package crawler

import "fmt"

// GameState is the state shared by the input mapper and the loop.
// Both entities live for the whole session; the ogre is only ever killed.
type GameState struct {
	Player *Entity
	Ogre   *Entity
}

// NewGameState pairs a player with an ogre.
func NewGameState(player, ogre *Entity) (*GameState, error) {
	if player == nil || ogre == nil {
		return nil, fmt.Errorf("crawler: game state needs both a player and an ogre")
	}
	return &GameState{Player: player, Ogre: ogre}, nil
}

// Won reports whether the ogre has been defeated.
func (s *GameState) Won() bool {
	return !s.Ogre.Alive()
}
