package Sint

import (
	"cmp"
	"fmt"
	"strings"
)

// Person is the record kept by the shell, ordered by Age and then by Name.
type Person struct {
	Age  uint32
	Name string
}

func ComparePersons(a, b Person) int {
	if c := cmp.Compare(a.Age, b.Age); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

func (p Person) String() string {
	return fmt.Sprintf("%d %s", p.Age, p.Name)
}
