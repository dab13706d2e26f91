package a

import "github.com/funvibe/typeasserts"

func bad() {
	typeasserts.AssertType[float64](1)                          // want `^assert_type failed\. expected: 'float64', actual 'int'$`
	typeasserts.AssertType[any](1)                              // want `^assert_type failed\. expected: '(any|interface\{\})', actual 'int'$`
	typeasserts.AssertType[Celsius](1.5)                        // want `^assert_type failed\. expected: 'a\.Celsius', actual 'float64'$`
	typeasserts.AssertType[int](int64(1))                       // want `^assert_type failed\. expected: 'int', actual 'int64'$`
	typeasserts.AssertType[*Reading](Reading{})                 // want `^assert_type failed\. expected: '\*a\.Reading', actual 'a\.Reading'$`
	typeasserts.AssertType[Temperature](2.5)                    // want `^assert_type failed\. expected: 'a\.Celsius', actual 'float64'$`
	typeasserts.AssertType[Pair[string, int]](Pair[int, int]{}) // want `^assert_type failed\. expected: 'a\.Pair\[string, ?int\]', actual 'a\.Pair\[int, ?int\]'$`
	typeasserts.AssertType[[]int]([]int64{})                    // want `^assert_type failed\. expected: '\[\]int', actual '\[\]int64'$`
}

func badNested() {
	typeasserts.AssertType[float64](typeasserts.AssertType[int](1))  // want `^assert_type failed\. expected: 'float64', actual 'int'$`
	typeasserts.AssertType[string](typeasserts.AssertType[int]("s")) // want `^assert_type failed\. expected: 'int', actual 'string'$`
}
