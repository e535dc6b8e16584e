package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	testRSAOnce sync.Once
	testRSAKey  *rsa.PrivateKey
	testRSAErr  error
)

// testRSA returns a 2048-bit key shared by all tests of the package.
func testRSA(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	testRSAOnce.Do(func() {
		testRSAKey, testRSAErr = rsa.GenerateKey(rand.Reader, 2048)
	})
	require.NoError(t, testRSAErr)
	return testRSAKey
}

func testRSAPublicDER(t *testing.T) []byte {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(&testRSA(t).PublicKey)
	require.NoError(t, err)
	return der
}

func testRSAPrivatePEM(t *testing.T) []byte {
	t.Helper()
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(testRSA(t)),
	})
}

func testRSAPair(t *testing.T) (KeyWrapper, KeyUnwrapper) {
	t.Helper()
	wrapper, err := ParsePublicKey(SchemeRSAOAEP256, testRSAPublicDER(t))
	require.NoError(t, err)
	unwrapper, err := ParsePrivateKey(SchemeRSAOAEP256, testRSAPrivatePEM(t))
	require.NoError(t, err)
	return wrapper, unwrapper
}

func testContentKey(t *testing.T) []byte {
	t.Helper()
	key, err := GenerateContentKey(nil)
	require.NoError(t, err)
	return key
}

// failingReader simulates an exhausted entropy source.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}
