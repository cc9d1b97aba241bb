// Package people models a person and a student without a class hierarchy.
//
// COMPOSITION INSTEAD OF INHERITANCE
// ──────────────────────────────────
// Go has no "extends". Student embeds Person, which gives it Person's
// fields and methods (Describe) as if they were its own:
//
//	s := people.NewStudent("Ana", 20, "A")
//	s.Name       // promoted from Person
//	s.Describe() // promoted from Person, unchanged
//	s.Study()    // defined on Student only
//
// A Student is NOT a Person as far as the type system is concerned; code
// that should accept either takes a Describer instead.
package people

import "fmt"

// Describer is anything that can describe itself in one sentence.
type Describer interface {
	Describe() string
}

// Person is a name and an age.
type Person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// NewPerson returns a Person. Age is not validated.
func NewPerson(name string, age int) Person {
	return Person{Name: name, Age: age}
}

// Describe returns "<name> is <age> years old."
func (p Person) Describe() string {
	return fmt.Sprintf("%s is %d years old.", p.Name, p.Age)
}

// Student is a Person with a grade.
type Student struct {
	Person
	Grade string `json:"grade"`
}

// NewStudent returns a Student whose embedded Person holds name and age.
func NewStudent(name string, age int, grade string) Student {
	return Student{Person: NewPerson(name, age), Grade: grade}
}

// Study returns "<name> is studying."
func (s Student) Study() string {
	return fmt.Sprintf("%s is studying.", s.Name)
}

var (
	_ Describer = Person{}
	_ Describer = Student{}
)
