package react_test

import (
	"fmt"

	"github.com/delaneyj/cellparty/react"
)

func Example() {
	r := react.New[int]()
	x := r.CreateInput(1)
	b, _ := react.Compute1(r, x, func(x int) int { return x + 1 })
	c, _ := react.Compute1(r, x, func(x int) int { return x * 10 })
	d, _ := react.Compute2(r, b, c, func(b, c int) int { return b + c })

	r.AddCallback(d, func(v int) {
		fmt.Println("d changed to", v)
	})

	r.SetValue(x, 3)
	r.SetValue(x, 3)

	v, _ := r.Value(d)
	fmt.Println("d =", v)
	// Output:
	// d changed to 34
	// d = 34
}

func ExampleReactor_RemoveCallback() {
	r := react.New[string]()
	name := r.CreateInput("world")
	greeting, _ := react.Compute1(r, name, func(n string) string { return "hello " + n })

	id, _ := r.AddCallback(greeting, func(v string) { fmt.Println(v) })
	r.SetValue(name, "gopher")

	fmt.Println(r.RemoveCallback(greeting, id))
	fmt.Println(r.RemoveCallback(greeting, id))
	r.SetValue(name, "nobody")
	// Output:
	// hello gopher
	// <nil>
	// react: nonexistent callback
}
