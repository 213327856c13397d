package detect

// Package detect maps a pasted link to the social platform it came from.
// Detection is a pure substring check over the lowercased input, so the
// result can be re-derived on every keystroke and can never desynchronize
// from the input field it describes.
