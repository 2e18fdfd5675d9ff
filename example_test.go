package params_test

import (
	"fmt"

	params "github.com/tpet/program-params"
)

// Mirrors a ping-like tool: three options and a required destination
// bound to caller-owned variables.
func Example() {
	var (
		audible  bool
		count    uint    = 10
		interval float32 = 1.0
		dest     string
	)
	p := params.New()
	params.Bind(p, &audible, []string{"-a"})
	params.Bind(p, &count, []string{"-c", "--count"})
	params.Bind(p, &interval, []string{"-i", "--interval"})
	params.Bind(p, &dest, nil, params.Required())
	if err := p.Parse([]string{"-a", "-c", "10", "-i", "2.5", "192.168.0.1"}); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Audible:", audible)
	fmt.Println("Count:", count)
	fmt.Println("Interval:", interval)
	fmt.Println("Destination:", dest)
	// Output:
	// Audible: true
	// Count: 10
	// Interval: 2.5
	// Destination: 192.168.0.1
}

// The registry can own the storage itself; values are read back by
// name after parsing.
func ExampleGet() {
	p := params.New()
	params.Declare[bool](p, []string{"-a"})
	params.Declare[uint](p, []string{"-c", "--count"})
	params.Declare[float32](p, []string{"-i", "--interval"})
	params.Declare[string](p, []string{"destination"}, params.Required())
	if err := p.Parse([]string{"-ai2.5", "192.168.0.1"}); err != nil {
		fmt.Println(err)
		return
	}
	audible, _ := params.Get[bool](p, "-a")
	count, _ := params.Get[uint](p, "--count")
	interval, _ := params.Get[float32](p, "--interval")
	dest, _ := params.Get[string](p, "destination")
	fmt.Println("Audible:", audible)
	fmt.Println("Count:", count)
	fmt.Println("Interval:", interval)
	fmt.Println("Destination:", dest)
	// Output:
	// Audible: true
	// Count: 0
	// Interval: 2.5
	// Destination: 192.168.0.1
}
