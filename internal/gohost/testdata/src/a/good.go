package a

import "github.com/funvibe/typeasserts"

type Celsius float64

type Temperature = Celsius

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

type Reading struct {
	Sensor string
	Value  Celsius
}

func count() int { return 3 }

func reading() *Reading { return &Reading{Sensor: "t1"} }

var anything any

func good() {
	typeasserts.AssertType[int](1)
	typeasserts.AssertType[float64](1.0)
	typeasserts.AssertType[string]("x")
	typeasserts.AssertType[rune]('r')
	typeasserts.AssertType[bool](1 < 2)
	typeasserts.AssertType[int](count())
	typeasserts.AssertType[*Reading](reading())
	typeasserts.AssertType[Celsius](reading().Value)
	typeasserts.AssertType[any](anything)

	var err error
	typeasserts.AssertType[error](err)

	x := typeasserts.AssertType[int](2)
	typeasserts.AssertType[int](x)
}

func aliases() {
	typeasserts.AssertType[Celsius](Temperature(20))
	typeasserts.AssertType[Temperature](Celsius(20))
	typeasserts.AssertType[[]Celsius]([]Temperature{1, 2})
	typeasserts.AssertType[map[string]Temperature](map[string]Celsius{})
}

func generics() {
	typeasserts.AssertType[Pair[string, int]](Pair[string, int]{Key: "a", Value: 1})
	typeasserts.AssertType[func(int) string](func(int) string { return "" })
}

func nested() {
	typeasserts.AssertType[int](typeasserts.AssertType[int](1))
	typeasserts.AssertType[int]((typeasserts.AssertType[int](count())))
	typeasserts.AssertType[Celsius](typeasserts.AssertType[Temperature](Celsius(1)))
}
