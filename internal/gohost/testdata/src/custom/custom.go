package custom

import (
	"github.com/funvibe/typeasserts"
	"typetest"
)

func check() {
	typetest.Is[int](1)
	typetest.Is[string](1) // want `^assert_type failed\. expected: 'string', actual 'int'$`
	typetest.NotHooked[string](1)
	typeasserts.AssertType[string](1) // want `^assert_type failed\. expected: 'string', actual 'int'$`
	typetest.Is[int](typeasserts.AssertType[int](1))
}
