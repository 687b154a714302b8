// Package robot shows one type satisfying two independent interfaces.
package robot

type Mover interface {
	Move() string
}

type SoundMaker interface {
	MakeSound() string
}

// Robot is both a Mover and a SoundMaker.
type Robot struct{}

func (Robot) Move() string { return "Robot is moving forward" }

func (Robot) MakeSound() string { return "Robot is making a beep sound" }

var (
	_ Mover      = Robot{}
	_ SoundMaker = Robot{}
)
