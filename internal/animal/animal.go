// Package animal shows single inheritance expressed as embedding: a Dog is
// an Animal plus one more behavior.
package animal

type Animal struct{}

func (Animal) Eat() string { return "This animal eats food" }

// Dog gets Eat from the embedded Animal.
type Dog struct {
	Animal
}

func (Dog) Bark() string { return "The dog barks" }
