package app

import "github.com/funvibe/typeasserts"

func bad() {
	typeasserts.AssertType(1)
	typeasserts.AssertType[float64](1)
	typeasserts.AssertType[int]()
}
