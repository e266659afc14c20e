package main

// concatSlices mirrors slices.Concat (Go 1.22+) for older toolchains.
func concatSlices[E any](parts ...[]E) []E {
	var out []E
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
