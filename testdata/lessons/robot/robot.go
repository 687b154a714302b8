package robot

type Mover interface {
	Move() string
}

type SoundMaker interface {
	MakeSound() string
}

type Robot struct{}

func (Robot) Move() string { return "moving" }

func (Robot) MakeSound() string { return "beep" }

type Cart struct{}

func (*Cart) Move() string { return "rolling" }

type Statue struct{} // does nothing, must not appear
