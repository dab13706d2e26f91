package good

import "github.com/funvibe/typeasserts"

type Celsius float64

func good() {
	typeasserts.AssertType[int](1)
	typeasserts.AssertType[string]("s")
	typeasserts.AssertType[Celsius](Celsius(21.5))
	typeasserts.AssertType[int](typeasserts.AssertType[int](1))
}
