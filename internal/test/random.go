package test

import "math/rand/v2"

const credentialAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomCredentials returns a customer name of 7-14 letters and a secret of
// 16-32 characters. Names may repeat across calls.
func RandomCredentials() (name, secret string) {
	return randomString(7, 14), randomString(16, 32)
}

func randomString(minLen, maxLen int) string {
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = credentialAlphabet[rand.IntN(len(credentialAlphabet))]
	}
	return string(buf)
}
