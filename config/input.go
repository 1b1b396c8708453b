package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionConfirm
	ActionBack
	ActionMute
	ActionCount // Must be last - used for array sizing
)
