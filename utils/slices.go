package utils

func MapSlice[T any, R any](input []T, fn func(T) R) []R {
	result := make([]R, len(input))
	for i, v := range input {
		result[i] = fn(v)
	}
	return result
}

func EmptyIfNil[T any](input []T) []T {
	if input == nil {
		return make([]T, 0)
	}
	return input
}

// Take returns a copy of at most the first n elements. A negative n keeps
// everything.
func Take[T any](input []T, n int) []T {
	if n < 0 || n > len(input) {
		n = len(input)
	}

	result := make([]T, n)
	copy(result, input[:n])
	return result
}
