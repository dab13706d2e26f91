package broken

import "github.com/funvibe/typeasserts"

func missingTypeArgument() {
	typeasserts.AssertType(1)         // want `^You must provide a type parameter to 'assert_type'$`
	typeasserts.AssertType("literal") // want `^You must provide a type parameter to 'assert_type'$`
}

func missingArgument() {
	typeasserts.AssertType[int]()
}

func dynamic() {
	typeasserts.AssertType[int](undefinedVariable)
	typeasserts.AssertType[string](undefinedFunction())
}

func untypedNil() {
	typeasserts.AssertType[error](nil)
}

func nestedMissingTypeArgument() {
	typeasserts.AssertType[int](typeasserts.AssertType(1)) // want `^You must provide a type parameter to 'assert_type'$` `^assert_type failed\. expected: 'int', actual 'github\.com/funvibe/typeasserts\.AssertType\[<nothing>, <nothing>\]'$`
}
