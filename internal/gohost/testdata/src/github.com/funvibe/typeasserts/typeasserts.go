package typeasserts

func AssertType[T, V any](value V) V {
	return value
}
