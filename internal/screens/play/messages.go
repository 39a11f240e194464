package play

// gameSavedMsg reports the result of persisting a finished game.
type gameSavedMsg struct {
	err error
}
