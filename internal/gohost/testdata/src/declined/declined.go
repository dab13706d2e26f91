package declined

import "github.com/funvibe/typeasserts"

func ignored() {
	typeasserts.AssertType[float64](1)
	typeasserts.AssertType[string](2)
}
