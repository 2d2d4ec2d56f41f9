// Package common contains small helpers and constants shared by the
// client components of Velvet Research.
package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to remove passwords from memory once they have been handed
// to the auth collaborator.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// EmailLocalPart returns the part of an email address before the '@'.
// It is used as the short account label shown in the UI after sign-in.
// If s contains no '@', s is returned unchanged.
func EmailLocalPart(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '@' {
			return s[:i]
		}
	}
	return s
}
