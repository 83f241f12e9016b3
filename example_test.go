package lambertw_test

import (
	"fmt"

	"github.com/YuminosukeSato/lambertw"
)

func ExampleW0() {
	w, err := lambertw.W0(1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.15f\n", w)
	// Output: 0.567143290409784
}

func ExampleWm1() {
	_, err := lambertw.Wm1(1)
	fmt.Println(err)
	// Output: lambertw: Wm1: positive argument (got: 1)
}

func ExampleW() {
	w := lambertw.W(2, 1+2i)
	fmt.Printf("%.6f %.6f\n", real(w), imag(w))
	// Output: -1.686914 11.962631
}
