package core

type Key int

const (
	KeyNone Key = iota
	KeyLeftUp
	KeyLeftDown
	KeyRightUp
	KeyRightDown
	KeyServe
	KeyQuit
)

var keyName = map[Key]string{
	KeyNone:      "none",
	KeyLeftUp:    "left_up",
	KeyLeftDown:  "left_down",
	KeyRightUp:   "right_up",
	KeyRightDown: "right_down",
	KeyServe:     "serve",
	KeyQuit:      "quit",
}

func (k Key) String() string {
	if name, ok := keyName[k]; ok {
		return name
	}
	return "unknown"
}
