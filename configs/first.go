package configs

// First decodes the value at path from the first source defining it, or
// returns the zero value.
func First[T any](loader Loader, path string) (ret T) {
	for v := range All[T](loader, path) {
		return v
	}
	return
}
