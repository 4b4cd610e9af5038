package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents an action triggered by a key press.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionQuit
	ActionToggleHelp
	ActionReload
	ActionToggleMode
	ActionSearch
	ActionNextChange
	ActionPrevChange
	ActionFirstChange
	ActionLastChange
	ActionLineDown
	ActionLineUp
	ActionHalfPageDown
	ActionHalfPageUp
	ActionPageDown
	ActionPageUp
	ActionGoToTop
	ActionGoToBottom
	ActionJumpPercent
	ActionScrollLeft
	ActionScrollRight
	ActionScrollHome
)

// KeyHandler handles key input and maintains the count prefix buffer.
type KeyHandler struct {
	keyBuffer string
}

// NewKeyHandler creates a new key handler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// Handle processes a key message and returns the action with its count.
// Count is 1 when no prefix was typed; ActionJumpPercent gets 0 instead so
// a bare "%" can be told apart.
func (k *KeyHandler) Handle(msg tea.KeyMsg) (KeyAction, int) {
	key := msg.String()

	// Digits build up the count; a leading 0 resets horizontal scroll instead
	if isNumericKey(key) && !(key == "0" && k.keyBuffer == "") {
		k.keyBuffer += key
		return ActionNone, 0
	}

	action := k.keyToAction(key)
	count := 1
	if action == ActionJumpPercent {
		count = 0
	}
	if k.keyBuffer != "" {
		if n, err := strconv.Atoi(k.keyBuffer); err == nil {
			count = n
		}
	}
	k.keyBuffer = ""
	return action, count
}

// KeyBuffer returns the current key buffer.
func (k *KeyHandler) KeyBuffer() string {
	return k.keyBuffer
}

// ClearBuffer clears the key buffer.
func (k *KeyHandler) ClearBuffer() {
	k.keyBuffer = ""
}

func (k *KeyHandler) keyToAction(key string) KeyAction {
	switch key {
	case "ctrl+c", "q":
		return ActionQuit
	case "h", "?":
		return ActionToggleHelp
	case "r":
		return ActionReload
	case "s", "tab":
		return ActionToggleMode
	case "/":
		return ActionSearch
	case "n", "]":
		return ActionNextChange
	case "N", "[":
		return ActionPrevChange
	case "{":
		return ActionFirstChange
	case "}":
		return ActionLastChange
	case "j", "down", "ctrl+e":
		return ActionLineDown
	case "k", "up", "ctrl+y":
		return ActionLineUp
	case "J", "ctrl+d":
		return ActionHalfPageDown
	case "K", "ctrl+u":
		return ActionHalfPageUp
	case "pgdown", " ":
		return ActionPageDown
	case "pgup":
		return ActionPageUp
	case "g", "home":
		return ActionGoToTop
	case "G", "end":
		return ActionGoToBottom
	case "%":
		return ActionJumpPercent
	case "left":
		return ActionScrollLeft
	case "right":
		return ActionScrollRight
	case "0":
		return ActionScrollHome
	default:
		return ActionNone
	}
}

func isNumericKey(key string) bool {
	return len(key) == 1 && key >= "0" && key <= "9"
}
