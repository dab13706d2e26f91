package typetest

func Is[T, V any](value V) V {
	return value
}

func NotHooked[T, V any](value V) V {
	return value
}
