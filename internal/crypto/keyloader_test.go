package crypto

import (
	"encoding/base64"
	"encoding/pem"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFragment(t *testing.T) {
	tests := []struct {
		name    string
		carrier string
		want    map[string]string
	}{
		{
			name:    "bare",
			carrier: "q=abc&p=def",
			want:    map[string]string{"q": "abc", "p": "def"},
		},
		{
			name:    "leading hash",
			carrier: "#q=abc&p=def",
			want:    map[string]string{"q": "abc", "p": "def"},
		},
		{
			name:    "full url",
			carrier: "https://forms.example.com/form/123#q=abc&p=def",
			want:    map[string]string{"q": "abc", "p": "def"},
		},
		{
			name:    "plus and padding preserved",
			carrier: "q=a+b/c==&p=x",
			want:    map[string]string{"q": "a+b/c==", "p": "x"},
		},
		{
			name:    "percent escaped",
			carrier: "q=a%2Bb%3D&p=x",
			want:    map[string]string{"q": "a+b=", "p": "x"},
		},
		{
			name:    "first occurrence wins",
			carrier: "q=first&q=second",
			want:    map[string]string{"q": "first"},
		},
		{
			name:    "empty",
			carrier: "",
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFragment(tt.carrier))
		})
	}
}

func TestDecodeBase64_AllAlphabets(t *testing.T) {
	raw := []byte{0xfb, 0xff, 0xfe, 0x01, 0x02}

	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		got, err := DecodeBase64(enc.EncodeToString(raw))
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	}

	_, err := DecodeBase64("")
	assert.Error(t, err)
	_, err = DecodeBase64("!!!")
	assert.Error(t, err)
}

func TestKeyLoader_Load_Success(t *testing.T) {
	key := testContentKey(t)
	pubDER := testRSAPublicDER(t)

	fragment := BuildFragment(DefaultConfig(), key, pubDER)

	keys, err := NewKeyLoader(Config{}).Load("#" + fragment)
	require.NoError(t, err)
	assert.Equal(t, key, keys.ContentKey)
	require.NotNil(t, keys.Recipient)
	assert.Equal(t, SchemeRSAOAEP256, keys.Recipient.Scheme())
}

func TestKeyLoader_Load_StandardBase64PEM(t *testing.T) {
	key := testContentKey(t)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: testRSAPublicDER(t)})

	fragment := "q=" + url.QueryEscape(base64.StdEncoding.EncodeToString(key)) +
		"&p=" + base64.StdEncoding.EncodeToString(pubPEM)

	keys, err := NewKeyLoader(DefaultConfig()).Load("https://x.test/form/f1#" + fragment)
	require.NoError(t, err)
	assert.Equal(t, key, keys.ContentKey)
}

func TestKeyLoader_Load_CustomParams(t *testing.T) {
	cfg := Config{ContentKeyParam: "k", PublicKeyParam: "pub"}
	fragment := BuildFragment(cfg, testContentKey(t), testRSAPublicDER(t))

	_, err := NewKeyLoader(cfg).Load(fragment)
	require.NoError(t, err)

	_, err = NewKeyLoader(DefaultConfig()).Load(fragment)
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestKeyLoader_Load_X25519(t *testing.T) {
	owner, err := GenerateOwnerKeys(SchemeX25519SealedBox, 0)
	require.NoError(t, err)

	cfg := Config{Scheme: SchemeX25519SealedBox}
	keys, err := NewKeyLoader(cfg).Load(BuildFragment(cfg, testContentKey(t), owner.PublicKey))
	require.NoError(t, err)
	assert.Equal(t, SchemeX25519SealedBox, keys.Recipient.Scheme())
}

func TestKeyLoader_Load_MissingCredentials(t *testing.T) {
	key := base64.RawURLEncoding.EncodeToString(testContentKey(t))
	pub := base64.RawURLEncoding.EncodeToString(testRSAPublicDER(t))
	shortKey := base64.RawURLEncoding.EncodeToString(make([]byte, 16))

	tests := []struct {
		name    string
		carrier string
	}{
		{name: "empty", carrier: ""},
		{name: "only public key", carrier: "#p=" + pub},
		{name: "only content key", carrier: "#q=" + key},
		{name: "empty content key", carrier: "#q=&p=" + pub},
		{name: "content key not base64", carrier: "#q=***&p=" + pub},
		{name: "content key too short", carrier: "#q=" + shortKey + "&p=" + pub},
		{name: "public key garbage", carrier: "#q=" + key + "&p=" + base64.RawURLEncoding.EncodeToString([]byte("not a key"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := NewKeyLoader(DefaultConfig()).Load(tt.carrier)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingCredentials)
			assert.Nil(t, keys.ContentKey)
			assert.Nil(t, keys.Recipient)
		})
	}
}
