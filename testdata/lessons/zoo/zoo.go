package zoo

type Animal struct{}

func (Animal) Eat() string { return "eats" }

type Dog struct {
	Animal
}

type speaker interface {
	speak() string
}

type parrot struct{}

func (parrot) speak() string { return "hello" }

type Marker interface{}

type Rock struct{}
